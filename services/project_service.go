package services

import (
	"log"
	"strconv"

	"github.com/techspire-labs/academy-api/model"
	"gorm.io/gorm"
)

// ProjectService owns the catalog read-path logic that goes beyond plain
// CRUD: slug-or-key lookup and the image repair pass.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ParseNativeKey reports whether s is syntactically a valid store-native
// primary key, and returns the parsed key when it is.
func ParseNativeKey(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// FindBySlugOrKey resolves a caller-supplied identifier to one project.
// Early records were linked by slug only; native-key lookups were added later
// for the admin frontends without breaking old links. Identifiers that are
// not syntactically valid native keys are matched against the slug only.
// A miss surfaces as gorm.ErrRecordNotFound, a normal not-found, not a fault.
func (s *ProjectService) FindBySlugOrKey(identifier string) (*model.Project, error) {
	query := s.db.Where("slug = ?", identifier)
	if key, ok := ParseNativeKey(identifier); ok {
		query = s.db.Where("slug = ? OR id = ?", identifier, key)
	}

	var project model.Project
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// RepairImages runs the read-time repair pass over a listing batch. Records
// with a usable image are left alone; the rest get a synthesized placeholder
// URL persisted back before the batch is serialized, so the derivation runs
// at most once per record. Each record's write-back is independent: a failed
// persist is logged and that record keeps its old URL, without aborting the
// rest of the batch.
func (s *ProjectService) RepairImages(projects []model.Project) []model.Project {
	for i := range projects {
		s.repairAt(&projects[i], i)
	}
	return projects
}

// RepairImage repairs a single record fetched outside a batch
func (s *ProjectService) RepairImage(project *model.Project) {
	s.repairAt(project, 0)
}

func (s *ProjectService) repairAt(project *model.Project, batchIndex int) {
	if !NeedsImageRepair(project.ImageURL) {
		return
	}

	newURL := BuildPlaceholderImageURL(project.Title, project.Category, batchIndex)
	err := s.db.Model(&model.Project{}).
		Where("id = ?", project.ID).
		Update("image_url", newURL).Error
	if err != nil {
		log.Printf("image repair: failed to persist URL for project %d (%s): %v", project.ID, project.Slug, err)
		return
	}
	project.ImageURL = newURL
}

// RepairAllImages sweeps the whole catalog. Used by the nightly cron job so
// records that are never listed still get migrated off the legacy provider.
func (s *ProjectService) RepairAllImages() (int, error) {
	var projects []model.Project
	if err := s.db.Order("id ASC").Find(&projects).Error; err != nil {
		return 0, err
	}

	repaired := 0
	for i := range projects {
		before := projects[i].ImageURL
		s.repairAt(&projects[i], i)
		if projects[i].ImageURL != before {
			repaired++
		}
	}
	return repaired, nil
}
