package project

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/services"
	"github.com/techspire-labs/academy-api/utils/response"
	"github.com/techspire-labs/academy-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectHandler handles project catalog requests
type ProjectHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	projects  *services.ProjectService
	spaces    *services.SpacesClient
}

// NewProjectHandler creates a new project handler. spaces may be nil, which
// disables the image upload endpoint.
func NewProjectHandler(db *gorm.DB, spaces *services.SpacesClient) *ProjectHandler {
	return &ProjectHandler{
		db:        db,
		validator: validation.NewValidator(),
		projects:  services.NewProjectService(db),
		spaces:    spaces,
	}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	ID           string   `json:"id" validate:"required,min=3,max=100"`
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Category     string   `json:"category" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty,max=2048"`
	Technologies []string `json:"technologies" validate:"required,min=1"`
}

// UpdateProjectRequest represents the request body for updating a project.
// Omitted fields are left untouched; ImageURL is a pointer so an explicit
// empty string can clear the stored image.
type UpdateProjectRequest struct {
	Title        string   `json:"title" validate:"omitempty,min=3,max=255"`
	Category     string   `json:"category" validate:"omitempty"`
	Description  string   `json:"description" validate:"omitempty"`
	ImageURL     *string  `json:"imageUrl" validate:"omitempty"`
	Technologies []string `json:"technologies" validate:"omitempty,min=1"`
}

// projectView is a project plus its derived display metadata. Duration and
// rating are recomputed on every response, never stored.
type projectView struct {
	model.Project
	Duration string  `json:"duration"`
	Rating   float64 `json:"rating"`
}

func newProjectView(p model.Project) projectView {
	meta := services.DeriveDisplayMetadata(p.Slug, p.Title)
	return projectView{
		Project:  p,
		Duration: meta.Duration,
		Rating:   meta.Rating,
	}
}

func newProjectViews(projects []model.Project) []projectView {
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	return views
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	category := c.Query("category", "")
	pageParam := c.Query("page", "")
	limitParam := c.Query("limit", "")

	query := h.db.Model(&model.Project{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	// Pagination kicks in only when the caller supplies both page and limit;
	// the public site fetches the bare array, the admin tables paginate.
	paginate := pageParam != "" && limitParam != ""

	if !paginate {
		var projects []model.Project
		if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
			log.Printf("projects: list failed: %v", err)
			return response.InternalServerError(c, "Failed to fetch projects")
		}
		projects = h.projects.RepairImages(projects)
		return response.Success(c, newProjectViews(projects))
	}

	page, _ := strconv.Atoi(pageParam)
	limit, _ := strconv.Atoi(limitParam)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("projects: count failed: %v", err)
		return response.InternalServerError(c, "Failed to count projects")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var projects []model.Project
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&projects).Error; err != nil {
		log.Printf("projects: list failed: %v", err)
		return response.InternalServerError(c, "Failed to fetch projects")
	}

	projects = h.projects.RepairImages(projects)

	return response.Success(c, fiber.Map{
		"projects":    newProjectViews(projects),
		"total":       pagination.Total,
		"currentPage": pagination.CurrentPage,
		"totalPages":  pagination.TotalPages,
	})
}

// GetProject handles GET /api/projects/:id, accepting either the human slug
// or the store-native key
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	project, err := h.projects.FindBySlugOrKey(identifier)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		log.Printf("projects: lookup %q failed: %v", identifier, err)
		return response.InternalServerError(c, "Failed to fetch project")
	}

	h.projects.RepairImage(project)

	return response.Success(c, newProjectView(*project))
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	req.ID = validation.SanitizeString(req.ID)
	req.Title = validation.SanitizeString(req.Title)
	req.Description = validation.SanitizeString(req.Description)

	if !model.IsValidProjectCategory(req.Category) {
		return response.BadRequest(c, "Unknown project category")
	}

	technologies, ok := cleanTechnologies(req.Technologies)
	if !ok {
		return response.BadRequest(c, "At least one technology is required")
	}

	// Check if a project with the same id already exists
	var existing model.Project
	if err := h.db.Where("slug = ?", req.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "Project with this id already exists")
	}

	project := model.Project{
		Slug:         req.ID,
		Title:        req.Title,
		Category:     model.ProjectCategory(req.Category),
		Description:  req.Description,
		ImageURL:     services.NormalizeImageURL(req.ImageURL),
		Technologies: technologies,
	}

	if err := h.db.Create(&project).Error; err != nil {
		log.Printf("projects: create failed: %v", err)
		return response.InternalServerError(c, "Failed to create project")
	}

	return response.Created(c, newProjectView(project))
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	project, err := h.projects.FindBySlugOrKey(identifier)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		log.Printf("projects: lookup %q failed: %v", identifier, err)
		return response.InternalServerError(c, "Failed to fetch project")
	}

	if req.Title != "" {
		project.Title = validation.SanitizeString(req.Title)
	}

	if req.Category != "" {
		if !model.IsValidProjectCategory(req.Category) {
			return response.BadRequest(c, "Unknown project category")
		}
		project.Category = model.ProjectCategory(req.Category)
	}

	if req.Description != "" {
		project.Description = validation.SanitizeString(req.Description)
	}

	if req.ImageURL != nil {
		project.ImageURL = services.NormalizeImageURL(*req.ImageURL)
	}

	if req.Technologies != nil {
		technologies, ok := cleanTechnologies(req.Technologies)
		if !ok {
			return response.BadRequest(c, "At least one technology is required")
		}
		project.Technologies = technologies
	}

	if err := h.db.Save(project).Error; err != nil {
		log.Printf("projects: update failed: %v", err)
		return response.InternalServerError(c, "Failed to update project")
	}

	return response.Success(c, newProjectView(*project))
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	project, err := h.projects.FindBySlugOrKey(identifier)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		log.Printf("projects: lookup %q failed: %v", identifier, err)
		return response.InternalServerError(c, "Failed to fetch project")
	}

	if err := h.db.Delete(project).Error; err != nil {
		log.Printf("projects: delete failed: %v", err)
		return response.InternalServerError(c, "Failed to delete project")
	}

	return response.Message(c, "Project deleted successfully")
}

// UploadProjectImage handles POST /api/projects/:id/image (multipart form,
// field "image"). The file is stored in the Spaces bucket and the project's
// imageUrl is replaced with the public object URL.
func (h *ProjectHandler) UploadProjectImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "Image uploads are not configured")
	}

	identifier := c.Params("id")

	project, err := h.projects.FindBySlugOrKey(identifier)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		log.Printf("projects: lookup %q failed: %v", identifier, err)
		return response.InternalServerError(c, "Failed to fetch project")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "Image file is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		return response.BadRequest(c, "Only JPEG, PNG and WebP images are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("projects: open upload failed: %v", err)
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	key := fmt.Sprintf("projects/%s/%s%s", project.Slug, uuid.New().String(), filepath.Ext(fileHeader.Filename))

	publicURL, err := h.spaces.UploadFile(c.Context(), key, file, contentType)
	if err != nil {
		log.Printf("projects: upload to Spaces failed: %v", err)
		return response.InternalServerError(c, "Failed to upload image")
	}

	previousURL := project.ImageURL
	project.ImageURL = services.NormalizeImageURL(publicURL)
	if err := h.db.Save(project).Error; err != nil {
		log.Printf("projects: save image URL failed: %v", err)
		return response.InternalServerError(c, "Failed to update project image")
	}

	// Best effort: drop the replaced object so the bucket doesn't accumulate
	// orphans. Foreign URLs are left alone.
	if oldKey, ok := h.spaces.ObjectKeyFromURL(previousURL); ok {
		if err := h.spaces.DeleteFile(c.Context(), oldKey); err != nil {
			log.Printf("projects: delete replaced object %q failed: %v", oldKey, err)
		}
	}

	return response.Success(c, newProjectView(*project))
}

// cleanTechnologies trims entries and drops empties. The result must stay
// non-empty, otherwise the payload is rejected.
func cleanTechnologies(raw []string) (datatypes.JSON, bool) {
	cleaned := make([]string, 0, len(raw))
	for _, t := range raw {
		t = validation.SanitizeString(t)
		if t == "" {
			continue
		}
		cleaned = append(cleaned, t)
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
