package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/utils/auth"
	"github.com/techspire-labs/academy-api/utils/response"
	"gorm.io/gorm"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		db:         db,
	}
}

// authenticate validates the bearer token and loads the matching user.
// On failure it writes the error response and returns handled=true.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*model.User, error, bool) {
	// Get token from Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "Missing authorization token"), true
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, response.Unauthorized(c, "Invalid authorization format"), true
	}

	tokenString := parts[1]

	// Validate token
	claims, err := m.jwtManager.ValidateToken(tokenString)
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, response.Unauthorized(c, "Token has expired"), true
		}
		return nil, response.Unauthorized(c, "Invalid token"), true
	}

	// Load user from database so a deleted admin loses access immediately
	var user model.User
	if err := m.db.First(&user, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.Unauthorized(c, "User not found"), true
		}
		return nil, response.InternalServerError(c, "Failed to load user"), true
	}

	// Store user info in context
	c.Locals("user_id", user.ID)
	c.Locals("username", user.Username)
	c.Locals("user_role", user.Role)
	c.Locals("user", &user)

	return &user, nil, false
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, errResp, handled := m.authenticate(c)
		if handled {
			return errResp
		}
		return c.Next()
	}
}

// RequireAdmin is middleware that requires a valid token with the admin role
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, errResp, handled := m.authenticate(c)
		if handled {
			return errResp
		}
		if user.Role != "admin" {
			return response.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// GetUser returns the authenticated user stored in the request context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals("user").(*model.User)
	return user, ok
}
