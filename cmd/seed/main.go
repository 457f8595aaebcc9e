// Command seed populates the database with demo fitness data.
package main

import (
	"context"
	"flag"
	"log"

	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/observability"
	"fitlog/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	numTypes := flag.Int("workout-types", defaults.WorkoutTypes, "Number of workout types to create")
	exercisesPerType := flag.Int("exercises-per-type", defaults.ExercisesPerType, "Exercises to create per workout type")
	sessionsPerUser := flag.Int("sessions-per-user", defaults.SessionsPerUser, "Recorded workout sessions per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	observability.ConfigureLogger(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	opts := defaults
	opts.Users = *numUsers
	opts.WorkoutTypes = *numTypes
	opts.ExercisesPerType = *exercisesPerType
	opts.SessionsPerUser = *sessionsPerUser

	if err := s.Run(context.Background(), opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed")
}
