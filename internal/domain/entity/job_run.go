package entity

import "time"

// JobRun is the persisted last-run marker for a scheduled job. Sweeps whose
// effect is not naturally idempotent (daily reset, rollovers) check and
// update their row under a lock so they fire at most once per period.
type JobRun struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	LastRunAt time.Time `gorm:"not null" json:"last_run_at"`
}

func (JobRun) TableName() string {
	return "job_runs"
}

// Scheduled job names
const (
	JobDailyRollover   = "daily_rollover"
	JobMonthlyRollover = "monthly_rollover"
)
