package repository

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	domainRepo "vetclinic-backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.
		Preload("CreatedBy.User").
		Preload("AssignedNurse.User").
		Where("id = ?", id).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByCardID(db *gorm.DB, cardID int) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("AssignedNurse.User").
		Where("medical_card_id = ?", cardID).
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.
		Preload("CreatedBy.User").
		Preload("AssignedNurse.User").
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Schedule{}, id).Error
}

type taskRepository struct{}

func NewTaskRepository() domainRepo.TaskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(db *gorm.DB, task *entity.Task) error {
	return db.Create(task).Error
}

func (r *taskRepository) FindByID(db *gorm.DB, id int) (*entity.Task, error) {
	var task entity.Task
	err := db.Preload("Schedule").Preload("Nurse.User").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Task, error) {
	var tasks []entity.Task
	err := db.Where("schedule_id = ?", scheduleID).
		Order("day, due_time").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CountByNurseAndDay(db *gorm.DB, nurseID int, day time.Time) (int64, int64, error) {
	var total, completed int64
	err := db.Model(&entity.Task{}).
		Where("nurse_id = ? AND day = ?", nurseID, day).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = db.Model(&entity.Task{}).
		Where("nurse_id = ? AND day = ? AND is_done = ?", nurseID, day, true).
		Count(&completed).Error
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (r *taskRepository) Update(db *gorm.DB, task *entity.Task) error {
	return db.Save(task).Error
}

func (r *taskRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Task{}, id).Error
}

type doctorTaskRepository struct{}

func NewDoctorTaskRepository() domainRepo.DoctorTaskRepository {
	return &doctorTaskRepository{}
}

func (r *doctorTaskRepository) Create(db *gorm.DB, task *entity.DoctorTask) error {
	return db.Create(task).Error
}

func (r *doctorTaskRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorTask, error) {
	var task entity.DoctorTask
	err := db.Preload("Service").Preload("Doctor.User").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *doctorTaskRepository) FindByCardID(db *gorm.DB, cardID int) ([]entity.DoctorTask, error) {
	var tasks []entity.DoctorTask
	err := db.Preload("Service").
		Where("medical_card_id = ?", cardID).
		Order("created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *doctorTaskRepository) Update(db *gorm.DB, task *entity.DoctorTask) error {
	return db.Save(task).Error
}

func (r *doctorTaskRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.DoctorTask{}, id).Error
}
