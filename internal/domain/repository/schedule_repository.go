package repository

import (
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByCardID(db *gorm.DB, cardID int) ([]entity.Schedule, error)
	FindAll(db *gorm.DB) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id int) error
}

type TaskRepository interface {
	Create(db *gorm.DB, task *entity.Task) error
	FindByID(db *gorm.DB, id int) (*entity.Task, error)
	FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Task, error)
	// CountByNurseAndDay returns total and completed task counts for the
	// exact (nurse, day) pair; the daily salary recompute is built on it.
	CountByNurseAndDay(db *gorm.DB, nurseID int, day time.Time) (total int64, completed int64, err error)
	Update(db *gorm.DB, task *entity.Task) error
	Delete(db *gorm.DB, id int) error
}

type DoctorTaskRepository interface {
	Create(db *gorm.DB, task *entity.DoctorTask) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorTask, error)
	FindByCardID(db *gorm.DB, cardID int) ([]entity.DoctorTask, error)
	Update(db *gorm.DB, task *entity.DoctorTask) error
	Delete(db *gorm.DB, id int) error
}
