package config

type WorkerKeyStruct struct {
	SendEmailsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SendEmailsQueue: "send_emails_queue",
}
