package identity

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/naborsk/racequiz/config"
	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/repository"
)

const sessionCookie = "session_token"

// jwtProvider validates HMAC-signed bearer tokens whose subject is the user
// id, then loads the user record for name, phone and role. A token for a
// deleted user resolves to no session, not an error.
type jwtProvider struct {
	secret   []byte
	userRepo repository.UserRepository
}

func NewJWTProvider(cfg *config.Config, userRepo repository.UserRepository) Provider {
	return &jwtProvider{secret: []byte(cfg.JWTSecret), userRepo: userRepo}
}

func (p *jwtProvider) GetSession(r *http.Request) (*Session, error) {
	tokenString := extractToken(r)
	if tokenString == "" {
		return nil, nil
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}

	user, err := p.userRepo.FindByID(claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading session user: %w", err)
	}
	return &Session{User: *user}, nil
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// SignToken issues a token for a user id. Kept next to the verifier so the
// two sides of the format cannot drift; used by tests and the auth edge.
func SignToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
