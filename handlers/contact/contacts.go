package contact

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/services"
	"github.com/techspire-labs/academy-api/utils/response"
	"github.com/techspire-labs/academy-api/utils/validation"
	"gorm.io/gorm"
)

// ContactHandler handles contact form messages
type ContactHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateContactRequest represents the public contact form payload
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactStatusRequest marks a message read or unread
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read"`
}

// CreateContact handles POST /api/contact (public)
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	message := model.ContactMessage{
		Name:    validation.SanitizeString(req.Name),
		Email:   validation.SanitizeString(req.Email),
		Phone:   validation.SanitizeString(req.Phone),
		Subject: validation.SanitizeString(req.Subject),
		Message: validation.SanitizeString(req.Message),
		Status:  model.ContactStatusUnread,
	}

	if err := h.db.Create(&message).Error; err != nil {
		log.Printf("contact: create failed: %v", err)
		return response.InternalServerError(c, "Failed to save message")
	}

	return response.Created(c, message)
}

// ListContacts handles GET /api/contact (admin)
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	status := c.Query("status", "")

	query := h.db.Model(&model.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []model.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		log.Printf("contact: list failed: %v", err)
		return response.InternalServerError(c, "Failed to fetch messages")
	}

	return response.Success(c, messages)
}

// UpdateContactStatus handles PATCH /api/contact/:id (admin)
func (h *ContactHandler) UpdateContactStatus(c *fiber.Ctx) error {
	id, ok := services.ParseNativeKey(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Message not found")
	}

	var req UpdateContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	var message model.ContactMessage
	if err := h.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Message not found")
		}
		log.Printf("contact: lookup %d failed: %v", id, err)
		return response.InternalServerError(c, "Failed to fetch message")
	}

	message.Status = req.Status
	if err := h.db.Save(&message).Error; err != nil {
		log.Printf("contact: update failed: %v", err)
		return response.InternalServerError(c, "Failed to update message")
	}

	return response.Success(c, message)
}

// DeleteContact handles DELETE /api/contact/:id (admin)
func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	id, ok := services.ParseNativeKey(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Message not found")
	}

	var message model.ContactMessage
	if err := h.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Message not found")
		}
		log.Printf("contact: lookup %d failed: %v", id, err)
		return response.InternalServerError(c, "Failed to fetch message")
	}

	if err := h.db.Delete(&message).Error; err != nil {
		log.Printf("contact: delete failed: %v", err)
		return response.InternalServerError(c, "Failed to delete message")
	}

	return response.Message(c, "Message deleted successfully")
}
