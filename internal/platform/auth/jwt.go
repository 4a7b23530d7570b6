package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIDKey = "auth.user_id"

var ErrNoUser = errors.New("no authenticated user")

type Options struct {
	Secret   []byte
	Issuer   string // checked when non-empty
	Audience string // checked when non-empty
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Middleware validates an HS256 bearer token and stores the subject claim,
// which must be a UUID, as the requesting user id.
func Middleware(opts Options) fiber.Handler {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	parser := jwt.NewParser(parserOpts...)

	keyFunc := func(*jwt.Token) (any, error) {
		return opts.Secret, nil
	}

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(token, claims, keyFunc); err != nil {
			return unauthorized(c, "invalid token")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return unauthorized(c, "invalid token subject")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the user id stored by Middleware.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoUser
	}
	return id, nil
}

// WithUserID stores id the same way Middleware does.
func WithUserID(c *fiber.Ctx, id uuid.UUID) {
	c.Locals(userIDKey, id)
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(errorResponse{
		Error:   "unauthorized",
		Message: msg,
	})
}
