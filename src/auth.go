package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identidad del usuario autenticado, extraída del token
type Identity struct {
	UserID string
}

type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

var errInvalidToken = errors.New("invalid token")

// HMACVerifier valida tokens JWT firmados con HS256 y un secreto compartido
// con el servicio de usuarios.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(token string) (Identity, error) {
	parsed, err := jwt.Parse(token,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return Identity{}, errInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errInvalidToken
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return Identity{}, errInvalidToken
	}
	return Identity{UserID: userID}, nil
}

type ctxKey int

const (
	identityKey ctxKey = iota
	credentialKey
)

// RequireAuth exige un bearer token válido, deja la identidad en el contexto
// y conserva el header Authorization crudo para reenviarlo a inventario.
func RequireAuth(verifier TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		id, err := verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, id)
		ctx = context.WithValue(ctx, credentialKey, raw)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}

func credentialFrom(ctx context.Context) string {
	c, _ := ctx.Value(credentialKey).(string)
	return c
}
