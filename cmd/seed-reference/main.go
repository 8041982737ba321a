package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/database"
	"github.com/campushire/driveport-backend/internal/logger"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// Starter reference data so fresh installs have something to target.
var colleges = []string{
	"Indian Institute of Technology Delhi",
	"Indian Institute of Technology Bombay",
	"National Institute of Technology Trichy",
	"Birla Institute of Technology and Science Pilani",
	"Vellore Institute of Technology",
	"Delhi Technological University",
	"Anna University",
	"College of Engineering Pune",
}

var studentGroups = []string{
	"Computer Science and Engineering",
	"Information Technology",
	"Electronics and Communication",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"MBA",
	"MCA",
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	collegeRepo := repository.NewCollegeRepository(pool)
	groupRepo := repository.NewStudentGroupRepository(pool)

	fmt.Println("=== Seeding Reference Data ===")

	created := 0
	for _, name := range colleges {
		college := &model.College{Name: name, IsApproved: true}
		if err := collegeRepo.Create(ctx, college); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				fmt.Printf("skip college %q (exists)\n", name)
				continue
			}
			log.Fatal().Err(err).Str("name", name).Msg("Failed to create college")
		}
		created++
	}
	fmt.Printf("Colleges created: %d\n", created)

	created = 0
	for _, name := range studentGroups {
		group := &model.StudentGroup{Name: name, IsApproved: true}
		if err := groupRepo.Create(ctx, group); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				fmt.Printf("skip group %q (exists)\n", name)
				continue
			}
			log.Fatal().Err(err).Str("name", name).Msg("Failed to create student group")
		}
		created++
	}
	fmt.Printf("Student groups created: %d\n", created)

	fmt.Println("Done.")
}
