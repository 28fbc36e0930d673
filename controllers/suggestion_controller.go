package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type SuggestionController struct {
	suggestions *services.SuggestionService
}

func NewSuggestionController(suggestions *services.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestions: suggestions}
}

// Suggest returns up to ten catalog foods matching the caller's goal. An
// explicit ?goal= query overrides the stored goal for this call only.
func (sc *SuggestionController) Suggest(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	foods, err := sc.suggestions.Suggest(principal.ID, c.Query("goal"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
