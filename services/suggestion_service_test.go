package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	foods := []models.Food{
		{Name: "Cucumber", Calories: 15, ProteinG: 0.7},
		{Name: "Watermelon", Calories: 30, ProteinG: 0.6},
		{Name: "Oatmeal", Calories: 68, ProteinG: 2.4},
		{Name: "White Rice", Calories: 130, ProteinG: 2.7},
		{Name: "Chicken Breast", Calories: 165, ProteinG: 31},
		{Name: "Jollof Rice", Calories: 182, ProteinG: 4.2},
		{Name: "Suya", Calories: 260, ProteinG: 28},
		{Name: "Egusi Soup", Calories: 410, ProteinG: 18},
		{Name: "Groundnuts", Calories: 567, ProteinG: 26},
	}
	require.NoError(t, db.Create(&foods).Error)
}

func TestSuggestWeightLoss(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewSuggestionService(db, NewUserService(db))
	user := createUser(t, db, "ada@example.com", models.GoalWeightLoss)

	foods, err := svc.Suggest(user.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.Less(t, f.Calories, 150.0, "%s does not fit weight_loss", f.Name)
	}
}

func TestSuggestWeightGain(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewSuggestionService(db, NewUserService(db))
	user := createUser(t, db, "ada@example.com", models.GoalWeightGain)

	foods, err := svc.Suggest(user.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.True(t, f.ProteinG > 20 || f.Calories > 400, "%s does not fit weight_gain", f.Name)
	}
}

func TestSuggestMaintainAndUnrecognizedGoal(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewSuggestionService(db, NewUserService(db))
	user := createUser(t, db, "ada@example.com", models.GoalMaintainWeight)

	for _, override := range []string{"", "get_swole", "maintain_weight"} {
		foods, err := svc.Suggest(user.ID, override)
		require.NoError(t, err, "override %q", override)
		require.NotEmpty(t, foods)
		for _, f := range foods {
			assert.GreaterOrEqual(t, f.Calories, 100.0, "override %q: %s", override, f.Name)
			assert.LessOrEqual(t, f.Calories, 300.0, "override %q: %s", override, f.Name)
		}
	}
}

func TestSuggestOverrideBeatsStoredGoal(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewSuggestionService(db, NewUserService(db))
	user := createUser(t, db, "ada@example.com", models.GoalWeightGain)

	foods, err := svc.Suggest(user.ID, "weight_loss")
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.Less(t, f.Calories, 150.0)
	}
}

func TestSuggestReadsLiveGoal(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	users := NewUserService(db)
	svc := NewSuggestionService(db, users)
	user := createUser(t, db, "ada@example.com", models.GoalWeightLoss)

	// goal changes through the profile, no re-login involved
	_, err := users.UpdateProfile(user.ID, ProfileInput{Goal: string(models.GoalWeightGain)})
	require.NoError(t, err)

	foods, err := svc.Suggest(user.ID, "")
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.True(t, f.ProteinG > 20 || f.Calories > 400, "stale goal used for %s", f.Name)
	}
}

func TestSuggestLimitAndEmptyResult(t *testing.T) {
	db := newTestDB(t)
	svc := NewSuggestionService(db, NewUserService(db))
	user := createUser(t, db, "ada@example.com", models.GoalWeightLoss)

	// empty catalog is not an error
	foods, err := svc.Suggest(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, foods)

	// more matches than the cap
	var lowCal []models.Food
	for i := 0; i < 15; i++ {
		lowCal = append(lowCal, models.Food{Name: fmt.Sprintf("Lettuce %d", i), Calories: 12})
	}
	require.NoError(t, db.Create(&lowCal).Error)

	foods, err = svc.Suggest(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, foods, 10, "suggestions cap at ten")
}
