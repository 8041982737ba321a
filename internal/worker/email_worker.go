package worker

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/mailer"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

const (
	EmailPollTimeout = 1 * time.Second

	// passwordAlphabet avoids ambiguous characters (0/O, 1/l/I).
	passwordAlphabet = "abcdefghijkmnpqrstuvwxyzACDEFGHJKLMNPQRSTUVWXYZ23456789"
	passwordLength   = 10
)

// EmailWorker drains the invitation queue: for each job it generates the
// student's assessment password, renders the templates, delivers via the sender,
// and publishes progress for the WebSocket stream.
type EmailWorker struct {
	cfg         *config.Config
	studentRepo *repository.StudentRepository
	sender      mailer.Sender
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewEmailWorker creates a new EmailWorker.
func NewEmailWorker(
	cfg *config.Config,
	studentRepo *repository.StudentRepository,
	sender mailer.Sender,
	rdb *redis.Client,
	log zerolog.Logger,
) *EmailWorker {
	return &EmailWorker{
		cfg:         cfg,
		studentRepo: studentRepo,
		sender:      sender,
		rdb:         rdb,
		log:         log.With().Str("component", "email_worker").Logger(),
	}
}

// Start runs the worker loop until the context is cancelled.
func (w *EmailWorker) Start(ctx context.Context) {
	w.log.Info().Msg("EmailWorker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("EmailWorker stopped")
			return

		default:
			item, err := w.rdb.BLPop(ctx, EmailPollTimeout, config.WorkerKey.SendEmailsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var job model.EmailJob
			if err := json.Unmarshal([]byte(item[1]), &job); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			w.process(ctx, &job)
		}
	}
}

func (w *EmailWorker) process(ctx context.Context, job *model.EmailJob) {
	err := w.deliver(ctx, job)
	if err != nil {
		w.log.Warn().
			Err(err).
			Int("drive_id", job.DriveID).
			Str("to", job.ToAddress).
			Msg("Invitation delivery failed")
	}
	w.publishProgress(ctx, job, err)
}

func (w *EmailWorker) deliver(ctx context.Context, job *model.EmailJob) error {
	password, err := generatePassword()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), w.cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := w.studentRepo.UpdatePassword(ctx, job.StudentID, string(hash)); err != nil {
		return err
	}

	vars := job.Vars
	if vars == nil {
		vars = map[string]string{}
	}
	vars["password"] = password

	return w.sender.Send(&mailer.Message{
		ToName:    job.ToName,
		ToAddress: job.ToAddress,
		Subject:   mailer.Render(job.SubjectTemplate, vars),
		Body:      mailer.Render(job.BodyTemplate, vars),
	})
}

// publishProgress bumps the drive's counters and emits a Pub/Sub event. The
// counters are the durable source; the event is best-effort fan-out.
func (w *EmailWorker) publishProgress(ctx context.Context, job *model.EmailJob, sendErr error) {
	counterKey := config.CacheKey.EmailsSentKey(job.DriveID)
	if sendErr != nil {
		counterKey = config.CacheKey.EmailsFailedKey(job.DriveID)
	}

	// Pipeline commands run in order, so the reads observe the increment.
	pipe := w.rdb.Pipeline()
	pipe.Incr(ctx, counterKey)
	sent := pipe.Get(ctx, config.CacheKey.EmailsSentKey(job.DriveID))
	failed := pipe.Get(ctx, config.CacheKey.EmailsFailedKey(job.DriveID))
	total := pipe.Get(ctx, config.CacheKey.EmailsTotalKey(job.DriveID))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		w.log.Error().Err(err).Int("drive_id", job.DriveID).Msg("Counter update failed")
		return
	}

	event := model.EmailProgressEvent{
		DriveID: job.DriveID,
		Email:   job.ToAddress,
		Sent:    parseCounter(sent.Val()),
		Failed:  parseCounter(failed.Val()),
		Total:   parseCounter(total.Val()),
	}
	event.Done = event.Total > 0 && event.Sent+event.Failed >= event.Total
	if sendErr != nil {
		event.Error = sendErr.Error()
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := w.rdb.Publish(ctx, config.CacheKey.EmailProgressChannel(job.DriveID), raw).Err(); err != nil {
		w.log.Warn().Err(err).Int("drive_id", job.DriveID).Msg("Progress publish failed")
	}
}

func parseCounter(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func generatePassword() (string, error) {
	buf := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
