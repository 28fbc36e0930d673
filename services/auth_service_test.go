package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

func newAuthService(t *testing.T) (*AuthService, *utils.TokenService) {
	t.Helper()
	tokens := utils.NewTokenService([]byte("test-secret"))
	return NewAuthService(newTestDB(t), tokens), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, tokens := newAuthService(t)

	user, err := svc.Register("Ada", "ada@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, models.GoalMaintainWeight, user.Goal, "registration uses the default goal")
	assert.NotEqual(t, "Secret123", user.Password, "plaintext must never be stored")

	token, err := svc.Login("ada@example.com", "Secret123")
	require.NoError(t, err)

	principal, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, "ada@example.com", principal.Email)
	assert.Equal(t, models.GoalMaintainWeight, principal.Goal)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("Ada", "ada@example.com", "Secret123")
	require.NoError(t, err)

	_, err = svc.Register("Other Name", "ada@example.com", "OtherPass456")
	assert.True(t, apperror.Is(err, apperror.ConflictError), "got %v", err)
}

// A registration that passes the lookup but loses the race to the unique
// index must still come back as a conflict, never as an internal error.
func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register("Ada", "ada@example.com", "Secret123")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes int
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, apperror.Is(err, apperror.ConflictError), "got %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one registration wins")
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("Ada", "ada@example.com", "Secret123")
	require.NoError(t, err)

	_, wrongPass := svc.Login("ada@example.com", "WrongPass")
	_, unknownEmail := svc.Login("nobody@example.com", "Secret123")

	require.Error(t, wrongPass)
	require.Error(t, unknownEmail)
	assert.True(t, apperror.Is(wrongPass, apperror.InvalidCredentialsError))
	assert.True(t, apperror.Is(unknownEmail, apperror.InvalidCredentialsError))
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error(), "the two failures must carry no distinguishing signal")
}
