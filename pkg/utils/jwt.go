package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"whatsup/internal/models/domain"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

type Claims struct {
	jwt.RegisteredClaims
	Mode     string `json:"mode"`
	FamilyID string `json:"family_id"`
}

// CreateSessionToken signs a token carrying the session role and family
// binding. The token is the only thing that survives between requests;
// the family graph itself stays in the store.
func CreateSessionToken(session domain.Session) (string, error) {
	claims := &Claims{
		Mode:     string(session.Mode),
		FamilyID: session.FamilyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 12)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateSessionToken(tokenString string) (domain.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	if !token.Valid {
		return domain.Session{}, jwt.ErrTokenUnverifiable
	}

	return domain.Session{
		Mode:     domain.Mode(claims.Mode),
		FamilyID: claims.FamilyID,
	}, nil
}
