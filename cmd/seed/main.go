// Seed loads the food catalog from a JSON file and a fixed set of starter
// tips. It wipes both tables first, so it is not for use against live data.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/daniel-odulate22/NutriTrack-API/config"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

var starterTips = []models.Tip{
	{Category: models.TipNutrition, Content: "Did you know? A handful of groundnuts is a great source of protein!"},
	{Category: models.TipMotivation, Content: "Consistency is key! Even a 20-minute workout is better than no workout."},
	{Category: models.TipNutrition, Content: "Hydration check! Are you drinking enough water? Aim for 8 glasses a day."},
	{Category: models.TipWorkout, Content: "Don't skip leg day! Strong legs are the foundation for a strong body."},
}

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	foodFile := flag.String("foods", "seed_data.json", "path to the food catalog JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	raw, err := os.ReadFile(*foodFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *foodFile).Msg("read food catalog")
	}
	var foods []models.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		log.Fatal().Err(err).Msg("parse food catalog")
	}

	if err := db.Unscoped().Where("1 = 1").Delete(&models.Food{}).Error; err != nil {
		log.Fatal().Err(err).Msg("clear foods")
	}
	if err := db.Create(&foods).Error; err != nil {
		log.Fatal().Err(err).Msg("insert foods")
	}
	log.Info().Int("count", len(foods)).Msg("seeded foods")

	if err := db.Unscoped().Where("1 = 1").Delete(&models.Tip{}).Error; err != nil {
		log.Fatal().Err(err).Msg("clear tips")
	}
	tips := make([]models.Tip, len(starterTips))
	copy(tips, starterTips)
	if err := db.Create(&tips).Error; err != nil {
		log.Fatal().Err(err).Msg("insert tips")
	}
	log.Info().Int("count", len(tips)).Msg("seeded tips")
}
