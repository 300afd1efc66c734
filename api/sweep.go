package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sweepTokenTTL = 15 * time.Minute

// NewSweepToken mints a short-lived HS256 token for calling the sweep
// endpoints. Operators generate one with the shared SWEEP_SECRET.
func NewSweepToken(secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "code-with-ahsan",
		Subject:   "sweep",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sweepTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySweepToken checks an HS256 sweep token against the shared secret.
func VerifySweepToken(secret, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid sweep token")
	}
	return nil
}

// SweepMiddleware protects the sweep endpoints with the shared-secret bearer
// token. Sweeps mutate many documents, so they never ride on user auth.
func SweepMiddleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if secret == "" {
			zap.S().Error("sweep endpoint called but SWEEP_SECRET is not set")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error": "sweeps not configured"}`))
			return
		}
		authHeader := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		if err := VerifySweepToken(secret, tokenString); err != nil {
			zap.S().Errorw("rejected sweep token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
