package service

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNurseNotFound = errors.New("nurse profile not found")

type IncomeService interface {
	// RecalculateDailySalary rebuilds the (nurse, day) salary row in full
	// from the day's task counts, then refreshes the nurse profile's
	// current-day and all-time salary fields.
	RecalculateDailySalary(tx *gorm.DB, nurseID int, day time.Time) error
	// AddNurseIncome appends amount to the nurse's daily ledger under a row
	// lock. Called once per first-time task completion, never reversed.
	AddNurseIncome(tx *gorm.DB, nurseID int, amount decimal.Decimal) error
	// AddDoctorIncome appends amount to the doctor's monthly ledger under a
	// row lock.
	AddDoctorIncome(tx *gorm.DB, doctorID int, amount decimal.Decimal) error
	// RunDailyRollover folds nurse daily totals into monthly totals and
	// zeroes the per-day salary snapshots. Guarded by a persisted marker so
	// it runs at most once per calendar day.
	RunDailyRollover(tx *gorm.DB, now time.Time) error
	// RunMonthlyRollover zeroes doctor monthly totals on the first day of
	// the month, at most once per month.
	RunMonthlyRollover(tx *gorm.DB, now time.Time) error
}

type incomeService struct {
	log              *logrus.Logger
	nurseRepo        repository.NurseProfileRepository
	taskRepo         repository.TaskRepository
	dailySalaryRepo  repository.NurseDailySalaryRepository
	nurseIncomeRepo  repository.NurseIncomeRepository
	doctorIncomeRepo repository.DoctorIncomeRepository
	jobRunRepo       repository.JobRunRepository
}

func NewIncomeService(
	log *logrus.Logger,
	nurseRepo repository.NurseProfileRepository,
	taskRepo repository.TaskRepository,
	dailySalaryRepo repository.NurseDailySalaryRepository,
	nurseIncomeRepo repository.NurseIncomeRepository,
	doctorIncomeRepo repository.DoctorIncomeRepository,
	jobRunRepo repository.JobRunRepository,
) IncomeService {
	return &incomeService{
		log:              log,
		nurseRepo:        nurseRepo,
		taskRepo:         taskRepo,
		dailySalaryRepo:  dailySalaryRepo,
		nurseIncomeRepo:  nurseIncomeRepo,
		doctorIncomeRepo: doctorIncomeRepo,
		jobRunRepo:       jobRunRepo,
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *incomeService) RecalculateDailySalary(tx *gorm.DB, nurseID int, day time.Time) error {
	day = dateOf(day)

	nurse, err := s.nurseRepo.FindByID(tx, nurseID)
	if err != nil {
		return err
	}
	if nurse == nil {
		return ErrNurseNotFound
	}

	total, completed, err := s.taskRepo.CountByNurseAndDay(tx, nurseID, day)
	if err != nil {
		return err
	}
	salary := nurse.RatePerTask.Mul(decimal.NewFromInt(completed))

	if err := s.dailySalaryRepo.Upsert(tx, &entity.NurseDailySalary{
		NurseID:        nurseID,
		Date:           day,
		TotalTasks:     int(total),
		CompletedTasks: int(completed),
		Salary:         salary,
	}); err != nil {
		return err
	}

	if day.Equal(dateOf(time.Now())) {
		nurse.SalaryPerDay = salary
	}
	totalSalary, err := s.dailySalaryRepo.SumByNurse(tx, nurseID)
	if err != nil {
		return err
	}
	nurse.TotalSalary = totalSalary
	if err := s.nurseRepo.Update(tx, nurse); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"nurse_id":  nurseID,
		"date":      day.Format("2006-01-02"),
		"total":     total,
		"completed": completed,
		"salary":    salary,
	}).Debug("Recalculated daily salary")
	return nil
}

func (s *incomeService) AddNurseIncome(tx *gorm.DB, nurseID int, amount decimal.Decimal) error {
	income, err := s.nurseIncomeRepo.FindByNurseIDForUpdate(tx, nurseID)
	if err != nil {
		return err
	}
	income.DailyTotal = income.DailyTotal.Add(amount)
	return s.nurseIncomeRepo.Save(tx, income)
}

func (s *incomeService) AddDoctorIncome(tx *gorm.DB, doctorID int, amount decimal.Decimal) error {
	income, err := s.doctorIncomeRepo.FindByDoctorIDForUpdate(tx, doctorID)
	if err != nil {
		return err
	}
	income.MonthlyTotal = income.MonthlyTotal.Add(amount)
	return s.doctorIncomeRepo.Save(tx, income)
}

func (s *incomeService) RunDailyRollover(tx *gorm.DB, now time.Time) error {
	run, err := s.jobRunRepo.GetForUpdate(tx, entity.JobDailyRollover)
	if err != nil {
		return err
	}
	if !run.LastRunAt.Before(dateOf(now)) {
		return nil
	}

	reset, err := s.nurseRepo.ResetAllSalaryPerDay(tx)
	if err != nil {
		return err
	}
	folded, err := s.nurseIncomeRepo.FoldDailyIntoMonthly(tx)
	if err != nil {
		return err
	}

	run.LastRunAt = now
	if err := s.jobRunRepo.Save(tx, run); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"salaries_reset": reset,
		"ledgers_folded": folded,
	}).Info("Daily income rollover complete")
	return nil
}

func (s *incomeService) RunMonthlyRollover(tx *gorm.DB, now time.Time) error {
	if now.Day() != 1 {
		return nil
	}
	run, err := s.jobRunRepo.GetForUpdate(tx, entity.JobMonthlyRollover)
	if err != nil {
		return err
	}
	if run.LastRunAt.Year() == now.Year() && run.LastRunAt.Month() == now.Month() {
		return nil
	}

	reset, err := s.doctorIncomeRepo.ResetAllMonthly(tx)
	if err != nil {
		return err
	}

	run.LastRunAt = now
	if err := s.jobRunRepo.Save(tx, run); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"ledgers_reset": reset}).Info("Monthly income rollover complete")
	return nil
}
