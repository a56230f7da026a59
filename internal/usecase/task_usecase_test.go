package usecase

import (
	"context"
	"testing"
	"time"

	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/delivery/http/middleware"
	"vetclinic-backoffice/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	mock           sqlmock.Sqlmock
	taskRepo       *fakeTaskRepo
	doctorTaskRepo *fakeDoctorTaskRepo
	scheduleRepo   *fakeScheduleRepo
	cardRepo       *fakeCardRepo
	nurseRepo      *fakeNurseRepo
	doctorRepo     *fakeDoctorRepo
	serviceRepo    *fakeServiceRepo
	income         *fakeIncomeService
	uc             TaskUsecase
}

func newTaskFixture(t *testing.T) *taskFixture {
	db, mock := newTestDB(t)
	f := &taskFixture{
		mock:           mock,
		taskRepo:       newFakeTaskRepo(),
		doctorTaskRepo: newFakeDoctorTaskRepo(),
		scheduleRepo:   &fakeScheduleRepo{schedules: map[int]*entity.Schedule{}},
		cardRepo:       newFakeCardRepo(),
		nurseRepo:      &fakeNurseRepo{nurses: map[int]*entity.NurseProfile{}},
		doctorRepo:     &fakeDoctorRepo{doctors: map[int]*entity.DoctorProfile{}},
		serviceRepo:    &fakeServiceRepo{services: map[int]entity.Service{}},
		income:         newFakeIncomeService(),
	}
	f.uc = NewTaskUsecase(
		db,
		testLogger(),
		f.taskRepo,
		f.doctorTaskRepo,
		f.scheduleRepo,
		f.cardRepo,
		f.nurseRepo,
		f.doctorRepo,
		f.serviceRepo,
		f.income,
	)
	return f
}

func (f *taskFixture) withSchedule(nurseID int) {
	f.scheduleRepo.schedules[1] = &entity.Schedule{
		ID:              1,
		MedicalCardID:   5,
		AssignedNurseID: nurseID,
		StartDate:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	f.nurseRepo.nurses[nurseID] = &entity.NurseProfile{ID: nurseID, RatePerTask: dec("10000")}
}

func TestTaskCreateDefaultsPriceFromNurseRate(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.Create(context.Background(), &dto.CreateTaskRequest{
		ScheduleID:  1,
		Description: "Give medication",
		Day:         "2026-03-12",
		DueTime:     "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.NurseID, "nurse defaults from the schedule")
	assert.True(t, dec("10000").Equal(resp.Price), "price defaults from the nurse rate")
	require.Len(t, f.income.recalcs, 1)
	assert.Equal(t, 2, f.income.recalcs[0].nurseID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestTaskCreateExplicitPriceWins(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.Create(context.Background(), &dto.CreateTaskRequest{
		ScheduleID:  1,
		Description: "Change bandage",
		Day:         "2026-03-12",
		DueTime:     "14:00",
		Price:       ptr(dec("25000")),
	})

	require.NoError(t, err)
	assert.True(t, dec("25000").Equal(resp.Price))
}

func TestTaskCreateDayOutsideScheduleWindow(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(context.Background(), &dto.CreateTaskRequest{
		ScheduleID:  1,
		Description: "Give medication",
		Day:         "2026-03-20",
		DueTime:     "09:00",
	})

	assert.ErrorIs(t, err, ErrDayOutOfRange)
	assert.Empty(t, f.taskRepo.tasks)
}

func TestTaskCreateNurseMustMatchSchedule(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(context.Background(), &dto.CreateTaskRequest{
		ScheduleID:  1,
		NurseID:     ptr(3),
		Description: "Give medication",
		Day:         "2026-03-12",
		DueTime:     "09:00",
	})

	assert.ErrorIs(t, err, ErrNurseScheduleMismatch)
}

func TestTaskCreateScheduleNotFound(t *testing.T) {
	f := newTaskFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Create(context.Background(), &dto.CreateTaskRequest{
		ScheduleID:  99,
		Description: "Give medication",
		Day:         "2026-03-12",
		DueTime:     "09:00",
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestTaskUpdateCompletionPaysOnce(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.taskRepo.tasks[1] = &entity.Task{
		ID:         1,
		ScheduleID: 1,
		NurseID:    2,
		Day:        time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		Price:      dec("12000"),
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err := f.uc.Update(context.Background(), 1, &dto.UpdateTaskRequest{IsDone: ptr(true)})
	require.NoError(t, err)
	assert.True(t, dec("12000").Equal(f.income.nurseIncomes[2]))

	// Marking a done task done again is rejected, so it cannot pay twice.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	_, err = f.uc.Update(context.Background(), 1, &dto.UpdateTaskRequest{IsDone: ptr(true)})
	assert.ErrorIs(t, err, ErrAlreadyDone)
	assert.True(t, dec("12000").Equal(f.income.nurseIncomes[2]), "completion pays exactly once")
}

func TestTaskUpdateRejectsReopen(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	done := time.Now()
	f.taskRepo.tasks[1] = &entity.Task{
		ID:         1,
		ScheduleID: 1,
		NurseID:    2,
		Day:        time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		IsDone:     true,
		DoneAt:     &done,
	}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Update(context.Background(), 1, &dto.UpdateTaskRequest{IsDone: ptr(false)})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTaskUpdateDayChangeRebuildsBothDays(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	oldDay := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	f.taskRepo.tasks[1] = &entity.Task{ID: 1, ScheduleID: 1, NurseID: 2, Day: oldDay}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.uc.Update(context.Background(), 1, &dto.UpdateTaskRequest{Day: ptr("2026-03-14")})

	require.NoError(t, err)
	require.Len(t, f.income.recalcs, 2, "both the new and the old day are rebuilt")
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), f.income.recalcs[0].day)
	assert.Equal(t, oldDay, f.income.recalcs[1].day)
}

func TestTaskUpdateDayOutsideWindow(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.taskRepo.tasks[1] = &entity.Task{
		ID:         1,
		ScheduleID: 1,
		NurseID:    2,
		Day:        time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.Update(context.Background(), 1, &dto.UpdateTaskRequest{Day: ptr("2026-03-20")})
	assert.ErrorIs(t, err, ErrDayOutOfRange)
}

func TestTaskDeleteKeepsEarnedIncome(t *testing.T) {
	f := newTaskFixture(t)
	f.withSchedule(2)
	f.income.nurseIncomes[2] = dec("12000")
	done := time.Now()
	f.taskRepo.tasks[1] = &entity.Task{
		ID:         1,
		ScheduleID: 1,
		NurseID:    2,
		Day:        time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		IsDone:     true,
		DoneAt:     &done,
		Price:      dec("12000"),
	}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.uc.Delete(context.Background(), 1))

	assert.Empty(t, f.taskRepo.tasks)
	assert.True(t, dec("12000").Equal(f.income.nurseIncomes[2]), "income is never clawed back")
	require.Len(t, f.income.recalcs, 1, "the day's aggregate is rebuilt without the task")
}

func TestDoctorTaskCreateDefaultsPriceFromService(t *testing.T) {
	f := newTaskFixture(t)
	userID := uuid.New()
	f.doctorRepo.doctors[4] = &entity.DoctorProfile{ID: 4, UserID: userID}
	f.cardRepo.cards[5] = &entity.MedicalCard{ID: 5}
	f.serviceRepo.services[7] = entity.Service{ID: 7, Name: "Surgery", Price: dec("200000")}
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.CreateDoctorTask(ctx, &dto.CreateDoctorTaskRequest{
		MedicalCardID: 5,
		ServiceID:     7,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.DoctorID, "doctor resolves from the authenticated user")
	assert.True(t, dec("200000").Equal(resp.Price))
}

func TestDoctorTaskCreateRequiresDoctorProfile(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.CreateDoctorTask(ctx, &dto.CreateDoctorTaskRequest{
		MedicalCardID: 5,
		ServiceID:     7,
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorTaskUpdateCompletionPaysOnce(t *testing.T) {
	f := newTaskFixture(t)
	f.doctorTaskRepo.tasks[1] = &entity.DoctorTask{
		ID:            1,
		MedicalCardID: 5,
		DoctorID:      4,
		ServiceID:     7,
		Price:         dec("200000"),
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err := f.uc.UpdateDoctorTask(context.Background(), 1, &dto.UpdateDoctorTaskRequest{IsDone: ptr(true)})
	require.NoError(t, err)
	assert.True(t, dec("200000").Equal(f.income.doctorIncomes[4]))

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	_, err = f.uc.UpdateDoctorTask(context.Background(), 1, &dto.UpdateDoctorTaskRequest{IsDone: ptr(true)})
	assert.ErrorIs(t, err, ErrAlreadyDone)
	assert.True(t, dec("200000").Equal(f.income.doctorIncomes[4]))
}
