package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"marketplace/internal/core/domain/model/kernel"
)

// actorContextKey is the echo context key holding the authenticated actor's ID.
const actorContextKey = "actorID"

// tokenTTL bounds how long an issued bearer token stays valid.
const tokenTTL = 24 * time.Hour

// Auth issues and verifies the bearer tokens protecting the API.
// Tokens are HMAC-signed JWTs whose subject is the identity's UUID.
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth using the given signing secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// IssueToken signs a token identifying the given identity.
func (a *Auth) IssueToken(identityID kernel.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   identityID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Middleware returns an echo middleware that requires a valid bearer token
// and stores the actor's ID in the request context.
func (a *Auth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actorID, err := a.authenticate(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing bearer token",
				})
			}

			ctx.Set(actorContextKey, actorID)
			return next(ctx)
		}
	}
}

func (a *Auth) authenticate(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	rawToken, found := strings.CutPrefix(header, "Bearer ")
	if !found || rawToken == "" {
		return kernel.UUID{}, fmt.Errorf("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	if !token.Valid {
		return kernel.UUID{}, fmt.Errorf("token is not valid")
	}

	return kernel.UUIDFromString(claims.Subject)
}

// actorFromContext retrieves the authenticated actor's ID set by Middleware.
func actorFromContext(ctx echo.Context) (kernel.UUID, error) {
	actorID, ok := ctx.Get(actorContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("request is not authenticated")
	}
	return actorID, nil
}
