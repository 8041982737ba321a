package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, drive_id, question_text, option_a, option_b, option_c, option_d,
	correct_answer, difficulty, points, created_at`

// ListByDrive retrieves all questions of a drive in insertion order.
func (r *QuestionRepository) ListByDrive(ctx context.Context, driveID int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE drive_id = $1 ORDER BY id`, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.DriveID, &q.QuestionText, &q.OptionA, &q.OptionB,
			&q.OptionC, &q.OptionD, &q.CorrectAnswer, &q.Difficulty, &q.Points, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CountByDrive returns the number of questions attached to a drive.
func (r *QuestionRepository) CountByDrive(ctx context.Context, driveID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM questions WHERE drive_id = $1`, driveID).Scan(&n)
	return n, err
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (drive_id, question_text, option_a, option_b, option_c, option_d, correct_answer, difficulty, points)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		q.DriveID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
		q.CorrectAnswer, q.Difficulty, q.Points,
	).Scan(&q.ID, &q.CreatedAt)
}

// CreateBatch inserts questions in one batched round trip.
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	batch := &pgx.Batch{}
	for i := range questions {
		q := &questions[i]
		batch.Queue(
			`INSERT INTO questions (drive_id, question_text, option_a, option_b, option_c, option_d, correct_answer, difficulty, points)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			q.DriveID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			q.CorrectAnswer, q.Difficulty, q.Points)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// CopyForDrive duplicates all questions of srcDriveID onto dstDriveID.
func (r *QuestionRepository) CopyForDrive(ctx context.Context, srcDriveID, dstDriveID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO questions (drive_id, question_text, option_a, option_b, option_c, option_d, correct_answer, difficulty, points)
		 SELECT $1, question_text, option_a, option_b, option_c, option_d, correct_answer, difficulty, points
		 FROM questions WHERE drive_id = $2`, dstDriveID, srcDriveID)
	return err
}
