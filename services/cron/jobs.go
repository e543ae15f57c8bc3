package cron

import (
	"fmt"
	"time"

	"github.com/techspire-labs/academy-api/model"
	"github.com/techspire-labs/academy-api/services"
)

// cronJobLogRetention is how long finished job logs are kept
const cronJobLogRetention = 30 * 24 * time.Hour

// RepairCatalogImages sweeps every project for a blank or legacy-provider
// image URL and persists a synthesized replacement. The read path already
// repairs records as they are listed; the sweep catches records nobody has
// requested yet.
func (m *CronManager) RepairCatalogImages() {
	jobName := "repair_catalog_images"

	projectService := services.NewProjectService(m.db)
	repaired, err := projectService.RepairAllImages()
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("catalog sweep failed: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Repaired %d project images", repaired))
}

// PurgeCronJobLogs deletes finished job log rows older than the retention window
func (m *CronManager) PurgeCronJobLogs() {
	jobName := "purge_cron_job_logs"

	cutoff := time.Now().Add(-cronJobLogRetention)
	result := m.db.Unscoped().
		Where("started_at < ? AND status IN ?", cutoff, []string{"completed", "failed"}).
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge logs: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Purged %d log rows", result.RowsAffected))
}
