package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestParseQuestionsCSV(t *testing.T) {
	input := strings.Join([]string{
		"question_text,option_a,option_b,option_c,option_d,correct_answer,difficulty,points",
		"What is 2+2?,3,4,5,6,B,easy,2",
		"Explain polymorphism.,,,,,,,",
		",a,b,c,d,A,easy,1",
		"Bad difficulty,a,b,c,d,A,brutal,1",
		"Bad points,a,b,c,d,A,easy,500",
	}, "\n")

	rows, rowErrs, err := ParseQuestionsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rowErrs) != 3 {
		t.Fatalf("expected 3 row errors, got %d: %v", len(rowErrs), rowErrs)
	}

	first := rows[0]
	if first.QuestionText != "What is 2+2?" {
		t.Errorf("question text = %q", first.QuestionText)
	}
	if first.OptionB == nil || *first.OptionB != "4" {
		t.Errorf("option b = %v", first.OptionB)
	}
	if first.Points != 2 {
		t.Errorf("points = %d", first.Points)
	}
	if first.Difficulty == nil || *first.Difficulty != "easy" {
		t.Errorf("difficulty = %v", first.Difficulty)
	}

	// Free-form question keeps nil options and default points.
	second := rows[1]
	if second.OptionA != nil || second.CorrectAnswer != nil || second.Difficulty != nil {
		t.Error("expected nil optional fields for free-form question")
	}
	if second.Points != 1 {
		t.Errorf("default points = %d", second.Points)
	}

	// Row numbers count the header, spreadsheet style.
	if rowErrs[0].Row != 4 {
		t.Errorf("first error row = %d, want 4", rowErrs[0].Row)
	}
}

func TestParseQuestionsCSVFileErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty file", "", ErrEmptyFile},
		{"wrong header", "text,a,b\nfoo,1,2", ErrBadHeader},
		{"header only", "question_text,option_a,option_b,option_c,option_d,correct_answer,difficulty,points", ErrNoValidRow},
		{"all rows invalid", "question_text,option_a,option_b,option_c,option_d,correct_answer,difficulty,points\n,,,,,,,", ErrNoValidRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseQuestionsCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseStudentsCSV(t *testing.T) {
	input := strings.Join([]string{
		"roll_number,name,email",
		"21CS001,Asha Verma,asha@example.com",
		"21CS002,,rahul@example.com",
		"21CS001,Duplicate,dup@example.com",
		",Missing Roll,missing@example.com",
		"21CS003,Bad Email,not-an-email",
	}, "\n")

	rows, rowErrs, err := ParseStudentsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rowErrs) != 3 {
		t.Fatalf("expected 3 row errors, got %d: %v", len(rowErrs), rowErrs)
	}

	if rows[0].RollNumber != "21CS001" || rows[0].Email != "asha@example.com" {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].Name != nil {
		t.Errorf("expected nil name for blank column, got %q", *rows[1].Name)
	}

	// The in-file duplicate is rejected, not silently merged.
	if !strings.Contains(rowErrs[0].Message, "duplicate") {
		t.Errorf("expected duplicate error, got %q", rowErrs[0].Message)
	}
}

func TestParseStudentsCSVHeaderCaseInsensitive(t *testing.T) {
	input := "Roll_Number,NAME,Email\n21CS001,Asha,asha@example.com"
	rows, _, err := ParseStudentsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestParseStudentsCSVShortRows(t *testing.T) {
	// Rows shorter than the header are padded, so a missing trailing column
	// reads as empty rather than crashing the parse.
	input := "roll_number,name,email\n21CS001,Asha"
	_, rowErrs, err := ParseStudentsCSV(strings.NewReader(input))
	if !errors.Is(err, ErrNoValidRow) {
		t.Fatalf("error = %v, want ErrNoValidRow", err)
	}
	if len(rowErrs) != 1 || !strings.Contains(rowErrs[0].Message, "email") {
		t.Errorf("row errors = %v", rowErrs)
	}
}
