// Command seed loads the bundled exercise catalog and a starter set of
// trainers and sessions into the database. It is idempotent in the weak
// sense of the schema: re-running appends duplicate rows, so it is meant
// for a fresh database file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/evelinastr/trainingclub/internal/adapters/database"
	"github.com/evelinastr/trainingclub/internal/client/catalog"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	"github.com/evelinastr/trainingclub/internal/infrastructure/observability"
	"github.com/evelinastr/trainingclub/pkg/config"
)

var trainers = []entities.Trainer{
	{Name: "Maria Lindqvist", Specialization: "Strength"},
	{Name: "Johan Berg", Specialization: "Cardio"},
	{Name: "Sara Nilsson", Specialization: "Mobility"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("trainingclub-seed", cfg.Env)

	ctx := context.Background()

	dbClient, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SQLite client")
	}
	defer dbClient.Close()

	if err := database.InitSchema(ctx, dbClient); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	exerciseAdapter := database.NewExerciseAdapter(dbClient)
	trainerAdapter := database.NewTrainerAdapter(dbClient)
	sessionAdapter := database.NewSessionAdapter(dbClient)

	for _, bundled := range catalog.Exercises {
		exercise := entities.Exercise{
			Title:       bundled.Title,
			Description: bundled.Description,
			ImageURL:    bundled.ImageURL,
		}
		if err := exerciseAdapter.Create(ctx, &exercise); err != nil {
			log.Fatal().Err(err).Str("title", exercise.Title).Msg("failed to seed exercise")
		}
	}
	log.Info().Int("count", len(catalog.Exercises)).Msg("seeded exercises")

	seeded := make([]entities.Trainer, 0, len(trainers))
	for _, trainer := range trainers {
		t := trainer
		if err := trainerAdapter.Create(ctx, &t); err != nil {
			log.Fatal().Err(err).Str("name", t.Name).Msg("failed to seed trainer")
		}
		seeded = append(seeded, t)
	}
	log.Info().Int("count", len(seeded)).Msg("seeded trainers")

	// One session per trainer over the coming week, so the booking
	// calendar has something to show out of the box.
	locations := []string{"Hall A", "Hall B", "Studio 2"}
	start := time.Now()
	count := 0
	for i, trainer := range seeded {
		session := entities.Session{
			TrainerID: trainer.ID,
			Date:      start.AddDate(0, 0, i+1).Format(entities.DateLayout),
			Time:      fmt.Sprintf("%02d:00", 9+2*i),
			Location:  locations[i%len(locations)],
		}
		if err := sessionAdapter.Create(ctx, &session); err != nil {
			log.Fatal().Err(err).Msg("failed to seed session")
		}
		count++
	}
	log.Info().Int("count", count).Msg("seeded sessions")
}
