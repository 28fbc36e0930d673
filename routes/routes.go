package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daniel-odulate22/NutriTrack-API/controllers"
	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Users       *controllers.UserController
	Meals       *controllers.MealController
	Suggestions *controllers.SuggestionController
	Foods       *controllers.FoodController
	Tips        *controllers.TipController
	Reminders   *controllers.ReminderController
	Realtime    *controllers.RealtimeController
}

func SetupRouter(tokens *utils.TokenService, ctrl Controllers, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Everything else requires a valid bearer token
	api := r.Group("/api")
	api.Use(middlewares.Auth(tokens))
	{
		api.POST("/meals/log", ctrl.Meals.LogMeal)
		api.GET("/meals/me", ctrl.Meals.ListMine)
		api.DELETE("/meals/:id", ctrl.Meals.Delete)

		api.GET("/suggestions", ctrl.Suggestions.Suggest)

		api.GET("/users/me", ctrl.Users.GetProfile)
		api.PUT("/users/me", ctrl.Users.UpdateProfile)

		api.GET("/foods", ctrl.Foods.List)
		api.GET("/tips/random", ctrl.Tips.Random)

		api.POST("/reminders", ctrl.Reminders.Create)
		api.GET("/reminders/me", ctrl.Reminders.ListMine)
		api.DELETE("/reminders/:id", ctrl.Reminders.Delete)
		api.GET("/reminders/ws", ctrl.Realtime.RemindersWS)
	}

	return r
}
