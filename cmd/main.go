package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/daniel-odulate22/NutriTrack-API/config"
	"github.com/daniel-odulate22/NutriTrack-API/controllers"
	"github.com/daniel-odulate22/NutriTrack-API/routes"
	"github.com/daniel-odulate22/NutriTrack-API/services"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	tokens := utils.NewTokenService([]byte(cfg.JWTSecret))

	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db, tokens)
	mealSvc := services.NewMealService(db)
	suggestionSvc := services.NewSuggestionService(db, userSvc)
	foodSvc := services.NewFoodService(db)
	tipSvc := services.NewTipService(db)
	reminderSvc := services.NewReminderService(db)

	hub := services.NewReminderHub(reminderSvc, log)
	go hub.Run(context.Background())

	r := routes.SetupRouter(tokens, routes.Controllers{
		Auth:        controllers.NewAuthController(authSvc),
		Users:       controllers.NewUserController(userSvc),
		Meals:       controllers.NewMealController(mealSvc),
		Suggestions: controllers.NewSuggestionController(suggestionSvc),
		Foods:       controllers.NewFoodController(foodSvc),
		Tips:        controllers.NewTipController(tipSvc),
		Reminders:   controllers.NewReminderController(reminderSvc),
		Realtime:    controllers.NewRealtimeController(hub),
	}, log)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
