package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// DriveStatusWorker walks approved drives through their scheduled lifecycle
// on a one-minute cron tick: upcoming before the start, live during the
// assessment window, completed after.
type DriveStatusWorker struct {
	driveRepo *repository.DriveRepository
	cron      *cron.Cron
	log       zerolog.Logger
}

// NewDriveStatusWorker creates a new DriveStatusWorker.
func NewDriveStatusWorker(driveRepo *repository.DriveRepository, log zerolog.Logger) *DriveStatusWorker {
	return &DriveStatusWorker{
		driveRepo: driveRepo,
		cron:      cron.New(),
		log:       log.With().Str("component", "drive_status_worker").Logger(),
	}
}

// Start schedules the tick and blocks until the context is cancelled.
func (w *DriveStatusWorker) Start(ctx context.Context) {
	if _, err := w.cron.AddFunc("* * * * *", func() { w.Tick(ctx) }); err != nil {
		w.log.Error().Err(err).Msg("Failed to schedule status tick")
		return
	}

	w.cron.Start()
	w.log.Info().Msg("DriveStatusWorker started")

	// Run once immediately so restarts catch up without waiting a minute.
	w.Tick(ctx)

	<-ctx.Done()
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.log.Info().Msg("DriveStatusWorker stopped")
}

// Tick advances every scheduled drive whose window boundary has passed.
func (w *DriveStatusWorker) Tick(ctx context.Context) {
	drives, err := w.driveRepo.ListScheduled(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("List scheduled drives failed")
		return
	}

	now := time.Now()
	for i := range drives {
		drive := &drives[i]
		next := NextStatus(drive, now)
		if next == drive.Status {
			continue
		}

		if err := w.driveRepo.UpdateStatus(ctx, drive.ID, next); err != nil {
			w.log.Error().Err(err).Int("drive_id", drive.ID).Msg("Status update failed")
			continue
		}
		w.log.Info().
			Int("drive_id", drive.ID).
			Str("from", string(drive.Status)).
			Str("to", string(next)).
			Msg("Drive status advanced")
	}
}

// NextStatus computes where a scheduled drive belongs at the given instant.
// Drives without a scheduled start stay put. The legacy ongoing state is
// treated like live and only ever advances to completed.
func NextStatus(drive *model.Drive, now time.Time) model.DriveStatus {
	if drive.ScheduledStart == nil || !drive.Status.Approved() {
		return drive.Status
	}

	start := *drive.ScheduledStart
	end := start.Add(time.Duration(drive.DurationMinutes) * time.Minute)

	switch {
	case now.Before(start):
		if drive.Status == model.DriveStatusApproved {
			return model.DriveStatusUpcoming
		}
		return drive.Status
	case now.Before(end):
		if drive.Status == model.DriveStatusOngoing {
			return drive.Status
		}
		return model.DriveStatusLive
	default:
		return model.DriveStatusCompleted
	}
}
