package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daniel-odulate22/NutriTrack-API/models"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 3 * time.Hour

// Token verification failures. The auth middleware treats them all the same,
// but they are distinguishable for logging and tests.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// Principal is the identity snapshot carried inside a token. It is captured
// at login and not re-read from the database during verification.
type Principal struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Goal  models.Goal `json:"goal"`
}

type tokenClaims struct {
	User Principal `json:"user"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens. The signing key is injected
// once at construction; verification never touches the database.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

func (s *TokenService) Issue(p Principal) (string, error) {
	now := s.now()
	claims := tokenClaims{
		User: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (Principal, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Principal{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignatureInvalid):
			return Principal{}, ErrTokenSignatureInvalid
		default:
			return Principal{}, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return Principal{}, ErrTokenMalformed
	}
	return claims.User, nil
}
