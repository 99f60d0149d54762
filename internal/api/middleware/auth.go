package middleware

import (
	"errors"
	"strings"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/security"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	localUserID = "user_id"
	localEmail  = "user_email"
)

// Identity resolves the bearer token into a user identity. Requests
// without a token pass through as guests; a token that is present but
// invalid is rejected outright.
func Identity(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return service.NewServiceError(constants.ErrCodeUnauthorized,
				errors.New("malformed authorization header"))
		}

		claims, err := security.ParseToken(secret, tokenString)
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			return service.NewServiceError(constants.ErrCodeUnauthorized, err)
		}

		c.Locals(localUserID, claims.Subject)
		c.Locals(localEmail, claims.Email)

		return c.Next()
	}
}

// RequireAuth rejects guests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == nil {
			return service.NewServiceError(constants.ErrCodeUnauthorized,
				errors.New("authentication required"))
		}
		return c.Next()
	}
}

// RequireAdmin gates the admin surface on the stored profile role, not
// the token's role claim.
func RequireAdmin(profiles repository.ProfileRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserID(c)
		if userID == nil {
			return service.NewServiceError(constants.ErrCodeUnauthorized,
				errors.New("authentication required"))
		}

		profile, err := profiles.FindByID(*userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return service.NewServiceError(constants.ErrCodeForbidden,
					errors.New("no profile for authenticated user"))
			}
			return service.NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if profile.Role != model.RoleAdmin {
			return service.NewServiceError(constants.ErrCodeForbidden,
				errors.New("admin role required"))
		}

		return c.Next()
	}
}

// UserID returns the authenticated user's id, or nil for guests.
func UserID(c *fiber.Ctx) *string {
	if id, ok := c.Locals(localUserID).(string); ok && id != "" {
		return &id
	}
	return nil
}
