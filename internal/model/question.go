package model

import "time"

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question belongs to a drive's assessment paper.
type Question struct {
	ID            int         `json:"id"`
	DriveID       int         `json:"drive_id"`
	QuestionText  string      `json:"question_text"`
	OptionA       *string     `json:"option_a,omitempty"`
	OptionB       *string     `json:"option_b,omitempty"`
	OptionC       *string     `json:"option_c,omitempty"`
	OptionD       *string     `json:"option_d,omitempty"`
	CorrectAnswer *string     `json:"correct_answer,omitempty"`
	Difficulty    *Difficulty `json:"difficulty,omitempty"`
	Points        int         `json:"points"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CreateQuestionRequest is the payload for adding a single question.
type CreateQuestionRequest struct {
	QuestionText  string  `json:"question_text" binding:"required,min=1,max=10000"`
	OptionA       *string `json:"option_a" binding:"omitempty,max=2000"`
	OptionB       *string `json:"option_b" binding:"omitempty,max=2000"`
	OptionC       *string `json:"option_c" binding:"omitempty,max=2000"`
	OptionD       *string `json:"option_d" binding:"omitempty,max=2000"`
	CorrectAnswer *string `json:"correct_answer" binding:"omitempty,max=2000"`
	Difficulty    *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Points        int     `json:"points" binding:"omitempty,min=1,max=100"`
}

// BulkQuestionsRequest uploads several questions in one request.
type BulkQuestionsRequest struct {
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}
