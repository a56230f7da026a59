package usecase

import (
	"context"
	"errors"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"
	"vetclinic-backoffice/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrNurseScheduleMismatch = errors.New("task nurse must match the schedule's assigned nurse")
	ErrDayOutOfRange         = errors.New("task day is outside the schedule window")
	ErrAlreadyDone           = errors.New("task is already completed")
	ErrInvalidTransition     = errors.New("a completed task cannot be reopened")
)

type TaskUsecase interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetByID(ctx context.Context, id int) (*dto.TaskResponse, error)
	ListBySchedule(ctx context.Context, scheduleID int) (*dto.TaskListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id int) error

	CreateDoctorTask(ctx context.Context, req *dto.CreateDoctorTaskRequest) (*dto.DoctorTaskResponse, error)
	ListDoctorTasksByCard(ctx context.Context, cardID int) (*dto.DoctorTaskListResponse, error)
	UpdateDoctorTask(ctx context.Context, id int, req *dto.UpdateDoctorTaskRequest) (*dto.DoctorTaskResponse, error)
	DeleteDoctorTask(ctx context.Context, id int) error
}

type taskUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	taskRepo       repository.TaskRepository
	doctorTaskRepo repository.DoctorTaskRepository
	scheduleRepo   repository.ScheduleRepository
	cardRepo       repository.MedicalCardRepository
	nurseRepo      repository.NurseProfileRepository
	doctorRepo     repository.DoctorProfileRepository
	serviceRepo    repository.ServiceRepository
	incomeService  service.IncomeService
}

func NewTaskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	taskRepo repository.TaskRepository,
	doctorTaskRepo repository.DoctorTaskRepository,
	scheduleRepo repository.ScheduleRepository,
	cardRepo repository.MedicalCardRepository,
	nurseRepo repository.NurseProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	serviceRepo repository.ServiceRepository,
	incomeService service.IncomeService,
) TaskUsecase {
	return &taskUsecase{
		db:             db,
		log:            log,
		taskRepo:       taskRepo,
		doctorTaskRepo: doctorTaskRepo,
		scheduleRepo:   scheduleRepo,
		cardRepo:       cardRepo,
		nurseRepo:      nurseRepo,
		doctorRepo:     doctorRepo,
		serviceRepo:    serviceRepo,
		incomeService:  incomeService,
	}
}

func (u *taskUsecase) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	day, err := parseDate(req.Day)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	nurseID := schedule.AssignedNurseID
	if req.NurseID != nil {
		if *req.NurseID != schedule.AssignedNurseID {
			return nil, ErrNurseScheduleMismatch
		}
		nurseID = *req.NurseID
	}
	if !schedule.Covers(day) {
		return nil, ErrDayOutOfRange
	}

	nurse, err := u.nurseRepo.FindByID(tx, nurseID)
	if err != nil {
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	task := &entity.Task{
		ScheduleID:  req.ScheduleID,
		NurseID:     nurseID,
		Description: req.Description,
		Day:         day,
		DueTime:     req.DueTime,
	}
	if req.Price != nil {
		task.Price = *req.Price
	} else {
		task.Price = nurse.RatePerTask
	}

	if err := u.taskRepo.Create(tx, task); err != nil {
		u.log.Warnf("Failed to create task: %+v", err)
		return nil, err
	}
	if err := u.incomeService.RecalculateDailySalary(tx, nurseID, day); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.TaskToResponse(task), nil
}

func (u *taskUsecase) GetByID(ctx context.Context, id int) (*dto.TaskResponse, error) {
	task, err := u.taskRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return converter.TaskToResponse(task), nil
}

func (u *taskUsecase) ListBySchedule(ctx context.Context, scheduleID int) (*dto.TaskListResponse, error) {
	tasks, err := u.taskRepo.FindByScheduleID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		return nil, err
	}
	return &dto.TaskListResponse{
		Tasks: converter.TasksToResponses(tasks),
		Total: len(tasks),
	}, nil
}

// Update applies task edits and drives the completion pipeline: the
// false→true flip stamps DoneAt and appends the task price to the nurse's
// income ledger, exactly once. A done task accepts neither flip again, so
// the ledger can never double-count.
func (u *taskUsecase) Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.taskRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	schedule, err := u.scheduleRepo.FindByID(tx, task.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	oldDay := task.Day
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Day != nil {
		day, err := parseDate(*req.Day)
		if err != nil {
			return nil, err
		}
		if !schedule.Covers(day) {
			return nil, ErrDayOutOfRange
		}
		task.Day = day
	}
	if req.DueTime != nil {
		task.DueTime = *req.DueTime
	}
	if req.Price != nil {
		task.Price = *req.Price
	}

	completedNow := false
	if req.IsDone != nil {
		if task.IsDone {
			if !*req.IsDone {
				return nil, ErrInvalidTransition
			}
			return nil, ErrAlreadyDone
		}
		if *req.IsDone {
			task.MarkDone()
			completedNow = true
		}
	}

	if err := u.taskRepo.Update(tx, task); err != nil {
		u.log.Warnf("Failed to update task %d: %+v", id, err)
		return nil, err
	}

	if completedNow {
		if err := u.incomeService.AddNurseIncome(tx, task.NurseID, task.Price); err != nil {
			return nil, err
		}
	}
	if err := u.incomeService.RecalculateDailySalary(tx, task.NurseID, task.Day); err != nil {
		return nil, err
	}
	if !oldDay.Equal(task.Day) {
		if err := u.incomeService.RecalculateDailySalary(tx, task.NurseID, oldDay); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.TaskToResponse(task), nil
}

// Delete removes the task and rebuilds the day's salary aggregate. Income
// already earned from a completed task is not clawed back.
func (u *taskUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.taskRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := u.taskRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete task %d: %+v", id, err)
		return err
	}
	if err := u.incomeService.RecalculateDailySalary(tx, task.NurseID, task.Day); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *taskUsecase) CreateDoctorTask(ctx context.Context, req *dto.CreateDoctorTaskRequest) (*dto.DoctorTaskResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	card, err := u.cardRepo.FindByID(tx, req.MedicalCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	svc, err := u.serviceRepo.FindByID(tx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	task := &entity.DoctorTask{
		MedicalCardID: req.MedicalCardID,
		DoctorID:      doctor.ID,
		ServiceID:     req.ServiceID,
		Description:   req.Description,
	}
	if req.Price != nil {
		task.Price = *req.Price
	} else {
		task.Price = svc.Price
	}

	if err := u.doctorTaskRepo.Create(tx, task); err != nil {
		u.log.Warnf("Failed to create doctor task: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	task.Service = *svc
	return converter.DoctorTaskToResponse(task), nil
}

func (u *taskUsecase) ListDoctorTasksByCard(ctx context.Context, cardID int) (*dto.DoctorTaskListResponse, error) {
	tasks, err := u.doctorTaskRepo.FindByCardID(u.db.WithContext(ctx), cardID)
	if err != nil {
		return nil, err
	}
	return &dto.DoctorTaskListResponse{
		Tasks: converter.DoctorTasksToResponses(tasks),
		Total: len(tasks),
	}, nil
}

func (u *taskUsecase) UpdateDoctorTask(ctx context.Context, id int, req *dto.UpdateDoctorTaskRequest) (*dto.DoctorTaskResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.doctorTaskRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Price != nil {
		task.Price = *req.Price
	}

	completedNow := false
	if req.IsDone != nil {
		if task.IsDone {
			if !*req.IsDone {
				return nil, ErrInvalidTransition
			}
			return nil, ErrAlreadyDone
		}
		if *req.IsDone {
			task.MarkDone()
			completedNow = true
		}
	}

	if err := u.doctorTaskRepo.Update(tx, task); err != nil {
		u.log.Warnf("Failed to update doctor task %d: %+v", id, err)
		return nil, err
	}
	if completedNow {
		if err := u.incomeService.AddDoctorIncome(tx, task.DoctorID, task.Price); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.DoctorTaskToResponse(task), nil
}

func (u *taskUsecase) DeleteDoctorTask(ctx context.Context, id int) error {
	task, err := u.doctorTaskRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return u.doctorTaskRepo.Delete(u.db.WithContext(ctx), id)
}
