package course

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/services"
	"github.com/techspire-labs/academy-api/utils/response"
	"github.com/techspire-labs/academy-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseHandler handles course catalog requests
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=255"`
	Image           string   `json:"image" validate:"omitempty,max=2048"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice float64  `json:"discountedPrice" validate:"omitempty,gt=0"`
	Category        string   `json:"category" validate:"required,oneof=Elite Premium"`
	Level           string   `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Author          string   `json:"author" validate:"required,max=255"`
	Rating          float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	Students        int      `json:"students" validate:"omitempty,min=0"`
	Duration        string   `json:"duration" validate:"omitempty,max=50"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	Overview        string   `json:"overviewParagraph" validate:"omitempty"`
}

// UpdateCourseRequest represents the request body for updating a course.
// Omitted fields are left untouched.
type UpdateCourseRequest struct {
	Title           string   `json:"title" validate:"omitempty,min=3,max=255"`
	Image           *string  `json:"image" validate:"omitempty"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	DiscountedPrice *float64 `json:"discountedPrice" validate:"omitempty,gt=0"`
	Category        string   `json:"category" validate:"omitempty,oneof=Elite Premium"`
	Level           string   `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Author          string   `json:"author" validate:"omitempty,max=255"`
	Rating          *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	Students        *int     `json:"students" validate:"omitempty,min=0"`
	Duration        string   `json:"duration" validate:"omitempty,max=50"`
	Skills          []string `json:"skills" validate:"omitempty,min=1"`
	Overview        *string  `json:"overviewParagraph" validate:"omitempty"`
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	category := c.Query("category", "")
	pageParam := c.Query("page", "")
	limitParam := c.Query("limit", "")

	query := h.db.Model(&model.Course{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	paginate := pageParam != "" && limitParam != ""

	if !paginate {
		var courses []model.Course
		if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
			log.Printf("courses: list failed: %v", err)
			return response.InternalServerError(c, "Failed to fetch courses")
		}
		return response.Success(c, courses)
	}

	page, _ := strconv.Atoi(pageParam)
	limit, _ := strconv.Atoi(limitParam)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("courses: count failed: %v", err)
		return response.InternalServerError(c, "Failed to count courses")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var courses []model.Course
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&courses).Error; err != nil {
		log.Printf("courses: list failed: %v", err)
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Success(c, fiber.Map{
		"courses":     courses,
		"total":       pagination.Total,
		"currentPage": pagination.CurrentPage,
		"totalPages":  pagination.TotalPages,
	})
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, ok := services.ParseNativeKey(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("courses: lookup %d failed: %v", id, err)
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /api/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	skills, ok := cleanSkills(req.Skills)
	if !ok {
		return response.BadRequest(c, "At least one skill is required")
	}

	course := model.Course{
		Title:           validation.SanitizeString(req.Title),
		Image:           services.NormalizeImageURL(req.Image),
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		Level:           req.Level,
		Author:          validation.SanitizeString(req.Author),
		Rating:          req.Rating,
		Students:        req.Students,
		Duration:        validation.SanitizeString(req.Duration),
		Skills:          skills,
		Overview:        validation.SanitizeString(req.Overview),
	}

	if err := h.db.Create(&course).Error; err != nil {
		log.Printf("courses: create failed: %v", err)
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, ok := services.ParseNativeKey(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("courses: lookup %d failed: %v", id, err)
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if req.Title != "" {
		course.Title = validation.SanitizeString(req.Title)
	}
	if req.Image != nil {
		course.Image = services.NormalizeImageURL(*req.Image)
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.DiscountedPrice != nil {
		course.DiscountedPrice = *req.DiscountedPrice
	}
	if req.Category != "" {
		course.Category = req.Category
	}
	if req.Level != "" {
		course.Level = req.Level
	}
	if req.Author != "" {
		course.Author = validation.SanitizeString(req.Author)
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}
	if req.Students != nil {
		course.Students = *req.Students
	}
	if req.Duration != "" {
		course.Duration = validation.SanitizeString(req.Duration)
	}
	if req.Skills != nil {
		skills, ok := cleanSkills(req.Skills)
		if !ok {
			return response.BadRequest(c, "At least one skill is required")
		}
		course.Skills = skills
	}
	if req.Overview != nil {
		course.Overview = validation.SanitizeString(*req.Overview)
	}

	if err := h.db.Save(&course).Error; err != nil {
		log.Printf("courses: update failed: %v", err)
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.Success(c, course)
}

// DeleteCourse handles DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, ok := services.ParseNativeKey(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		log.Printf("courses: lookup %d failed: %v", id, err)
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if err := h.db.Delete(&course).Error; err != nil {
		log.Printf("courses: delete failed: %v", err)
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.Message(c, "Course deleted successfully")
}

func cleanSkills(raw []string) (datatypes.JSON, bool) {
	cleaned := make([]string, 0, len(raw))
	for _, s := range raw {
		s = validation.SanitizeString(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}
	if len(cleaned) == 0 {
		return nil, false
	}

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return nil, false
	}
	return datatypes.JSON(encoded), true
}
