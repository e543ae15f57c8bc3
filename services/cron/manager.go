package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/techspire-labs/academy-api/model"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron: c,
		db:   db,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Nightly at 03:00: sweep the catalog for legacy/blank image URLs
	_, err := m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("repair_catalog_images")
		m.RepairCatalogImages()
	})
	if err != nil {
		return err
	}

	// Nightly at 04:00: purge old cron job logs
	_, err = m.cron.AddFunc("0 0 4 * * *", func() {
		m.logJobStart("purge_cron_job_logs")
		m.PurgeCronJobLogs()
	})
	if err != nil {
		return err
	}

	return nil
}

// logJobStart records a job start in the cron job log
func (m *CronManager) logJobStart(jobName string) {
	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] Failed to log start of %s: %v", jobName, err)
	}
}

// logJobComplete records a successful job run
func (m *CronManager) logJobComplete(jobName, message string) {
	m.finishJobLog(jobName, "completed", message, "")
}

// logJobError records a failed job run
func (m *CronManager) logJobError(jobName string, jobErr error) {
	log.Printf("[CRON] %s failed: %v", jobName, jobErr)
	m.finishJobLog(jobName, "failed", "", jobErr.Error())
}

func (m *CronManager) finishJobLog(jobName, status, message, errMsg string) {
	var entry model.CronJobLog
	err := m.db.Where("job_name = ? AND status = ?", jobName, "started").
		Order("started_at DESC").
		First(&entry).Error
	if err != nil {
		return
	}

	now := time.Now()
	entry.Status = status
	entry.CompletedAt = &now
	entry.Duration = int(now.Sub(entry.StartedAt).Milliseconds())
	entry.Message = message
	entry.ErrorMsg = errMsg

	if err := m.db.Save(&entry).Error; err != nil {
		log.Printf("[CRON] Failed to finish log for %s: %v", jobName, err)
	}
}
