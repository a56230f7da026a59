package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Task is a nurse task belonging to a schedule.
//
// The done transition is one-shot: DoneAt is stamped on the first false→true
// flip and never reset. Un-completing a task is rejected at the usecase
// boundary because the income ledger is append-only.
type Task struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	ScheduleID  int             `gorm:"not null;index" json:"schedule_id"`
	NurseID     int             `gorm:"not null;index" json:"nurse_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Day         time.Time       `gorm:"type:date;not null;index" json:"day"`
	DueTime     string          `gorm:"type:varchar(5);not null" json:"due_time"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	IsDone      bool            `gorm:"not null;default:false" json:"is_done"`
	DoneAt      *time.Time      `json:"done_at,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Schedule Schedule     `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Nurse    NurseProfile `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// MarkDone flips the task to done and stamps DoneAt if unset
func (t *Task) MarkDone() {
	t.IsDone = true
	if t.DoneAt == nil {
		now := time.Now()
		t.DoneAt = &now
	}
}
