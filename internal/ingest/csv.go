// Package ingest parses uploaded CSV files into validated request rows.
// Parsing is strict about headers and lenient about row order; bad rows are
// reported with their line numbers instead of failing the whole upload.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fatal parse errors.
var (
	ErrEmptyFile  = errors.New("file is empty")
	ErrBadHeader  = errors.New("unexpected CSV header")
	ErrNoValidRow = errors.New("no valid rows in file")
)

var (
	questionHeader = []string{"question_text", "option_a", "option_b", "option_c", "option_d", "correct_answer", "difficulty", "points"}
	studentHeader  = []string{"roll_number", "name", "email"}
)

// RowError reports a rejected CSV row. Row is 1-based and counts the header,
// matching what the user sees in a spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// QuestionRow is one parsed question upload row.
type QuestionRow struct {
	QuestionText  string
	OptionA       *string
	OptionB       *string
	OptionC       *string
	OptionD       *string
	CorrectAnswer *string
	Difficulty    *string
	Points        int
}

// StudentRow is one parsed roster upload row.
type StudentRow struct {
	RollNumber string
	Name       *string
	Email      string
}

// ParseQuestionsCSV reads a questions upload. Header must match
// questionHeader exactly (case-insensitive). Returns parsed rows plus
// per-row rejections; the error is non-nil only for file-level problems.
func ParseQuestionsCSV(r io.Reader) ([]QuestionRow, []RowError, error) {
	records, err := readAll(r, questionHeader)
	if err != nil {
		return nil, nil, err
	}

	var (
		rows     []QuestionRow
		rowErrs  []RowError
		rowIndex = 1
	)
	for _, rec := range records {
		rowIndex++
		row, err := parseQuestionRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowIndex, Message: err.Error()})
			continue
		}
		rows = append(rows, *row)
	}

	if len(rows) == 0 {
		return nil, rowErrs, ErrNoValidRow
	}
	return rows, rowErrs, nil
}

// ParseStudentsCSV reads a roster upload with header roll_number,name,email.
func ParseStudentsCSV(r io.Reader) ([]StudentRow, []RowError, error) {
	records, err := readAll(r, studentHeader)
	if err != nil {
		return nil, nil, err
	}

	var (
		rows     []StudentRow
		rowErrs  []RowError
		rowIndex = 1
		seen     = map[string]struct{}{}
	)
	for _, rec := range records {
		rowIndex++
		row, err := parseStudentRow(rec)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowIndex, Message: err.Error()})
			continue
		}
		if _, dup := seen[row.RollNumber]; dup {
			rowErrs = append(rowErrs, RowError{Row: rowIndex, Message: "duplicate roll number in file"})
			continue
		}
		seen[row.RollNumber] = struct{}{}
		rows = append(rows, *row)
	}

	if len(rows) == 0 {
		return nil, rowErrs, ErrNoValidRow
	}
	return rows, rowErrs, nil
}

func readAll(r io.Reader, header []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows shorter than the header are padded during parsing, so disable the
	// uniform record length check.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	if err := checkHeader(records[0], header); err != nil {
		return nil, err
	}
	return records[1:], nil
}

func checkHeader(got, want []string) error {
	if len(got) < len(want) {
		return fmt.Errorf("%w: want %s", ErrBadHeader, strings.Join(want, ","))
	}
	for i, col := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), col) {
			return fmt.Errorf("%w: column %d should be %q", ErrBadHeader, i+1, col)
		}
	}
	return nil
}

func parseQuestionRow(rec []string) (*QuestionRow, error) {
	rec = pad(rec, len(questionHeader))

	text := strings.TrimSpace(rec[0])
	if text == "" {
		return nil, errors.New("question_text is required")
	}

	row := &QuestionRow{
		QuestionText:  text,
		OptionA:       optional(rec[1]),
		OptionB:       optional(rec[2]),
		OptionC:       optional(rec[3]),
		OptionD:       optional(rec[4]),
		CorrectAnswer: optional(rec[5]),
		Points:        1,
	}

	if diff := strings.ToLower(strings.TrimSpace(rec[6])); diff != "" {
		switch diff {
		case "easy", "medium", "hard":
			row.Difficulty = &diff
		default:
			return nil, fmt.Errorf("difficulty %q is not easy, medium, or hard", rec[6])
		}
	}

	if pts := strings.TrimSpace(rec[7]); pts != "" {
		n, err := strconv.Atoi(pts)
		if err != nil || n < 1 || n > 100 {
			return nil, fmt.Errorf("points %q must be an integer between 1 and 100", pts)
		}
		row.Points = n
	}

	return row, nil
}

func parseStudentRow(rec []string) (*StudentRow, error) {
	rec = pad(rec, len(studentHeader))

	roll := strings.TrimSpace(rec[0])
	if roll == "" {
		return nil, errors.New("roll_number is required")
	}

	email := strings.TrimSpace(rec[2])
	if email == "" {
		return nil, errors.New("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email %q is not valid", email)
	}

	return &StudentRow{
		RollNumber: roll,
		Name:       optional(rec[1]),
		Email:      email,
	}, nil
}

func pad(rec []string, size int) []string {
	for len(rec) < size {
		rec = append(rec, "")
	}
	return rec
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
