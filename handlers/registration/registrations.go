package registration

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/utils/response"
	"github.com/techspire-labs/academy-api/utils/validation"
	"gorm.io/gorm"
)

// RegistrationHandler handles course registration submissions
type RegistrationHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(db *gorm.DB) *RegistrationHandler {
	return &RegistrationHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateRegistrationRequest represents the request body for a signup
type CreateRegistrationRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,min=7,max=20"`
	Course    string `json:"course" validate:"required,max=255"`
}

// CreateRegistration handles POST /api/register (public)
func (h *RegistrationHandler) CreateRegistration(c *fiber.Ctx) error {
	var req CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	registration := model.Registration{
		FirstName: validation.SanitizeString(req.FirstName),
		LastName:  validation.SanitizeString(req.LastName),
		Email:     validation.SanitizeString(req.Email),
		Mobile:    validation.SanitizeString(req.Mobile),
		Course:    validation.SanitizeString(req.Course),
	}

	if err := h.db.Create(&registration).Error; err != nil {
		log.Printf("registrations: create failed: %v", err)
		return response.InternalServerError(c, "Failed to save registration")
	}

	return response.Created(c, registration)
}

// ListRegistrations handles GET /api/register (admin)
func (h *RegistrationHandler) ListRegistrations(c *fiber.Ctx) error {
	var registrations []model.Registration
	if err := h.db.Order("created_at DESC").Find(&registrations).Error; err != nil {
		log.Printf("registrations: list failed: %v", err)
		return response.InternalServerError(c, "Failed to fetch registrations")
	}

	return response.Success(c, registrations)
}
