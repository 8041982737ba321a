package model

// EmailJob is one queued invitation send, serialized onto the Redis list
// consumed by the email worker. Templates and render vars are resolved at
// enqueue time; the worker only adds the generated password.
type EmailJob struct {
	DriveID         int               `json:"drive_id"`
	StudentID       int               `json:"student_id"`
	ToName          string            `json:"to_name"`
	ToAddress       string            `json:"to_address"`
	SubjectTemplate string            `json:"subject_template"`
	BodyTemplate    string            `json:"body_template"`
	Vars            map[string]string `json:"vars"`
}

// EmailProgressEvent is published on the drive's Pub/Sub channel after every
// delivery attempt and relayed to WebSocket subscribers.
type EmailProgressEvent struct {
	DriveID int    `json:"drive_id"`
	Email   string `json:"email"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Total   int    `json:"total"`
	Done    bool   `json:"done"`
	Error   string `json:"error,omitempty"`
}
