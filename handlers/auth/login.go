package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/utils/auth"
	"github.com/techspire-labs/academy-api/utils/middleware"
	"github.com/techspire-labs/academy-api/utils/response"
	"github.com/techspire-labs/academy-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil
// when Redis is unavailable.
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the shape both admin frontends expect
type LoginResponse struct {
	ID       uint   `json:"_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	ip := c.IP()

	// A username that fails the shape check cannot exist, so the store is
	// never queried for it. The response stays indistinguishable from a
	// wrong password.
	if ok, _ := validation.ValidateUsername(req.Username); !ok {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Find user by username
	var user model.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// Record failed attempt even if user not found
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Verify password
	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("auth: token generation failed: %v", err)
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.Success(c, LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// Me handles GET /api/auth/me, returning the authenticated user so the admin
// frontends can restore a session from a stored token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Missing authorization token")
	}
	return response.Success(c, user)
}
