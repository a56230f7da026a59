package service

import (
	"testing"
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type incomeFixture struct {
	nurseRepo        *fakeNurseRepo
	taskRepo         *fakeTaskRepo
	dailySalaryRepo  *fakeDailySalaryRepo
	nurseIncomeRepo  *fakeNurseIncomeRepo
	doctorIncomeRepo *fakeDoctorIncomeRepo
	jobRunRepo       *fakeJobRunRepo
	svc              IncomeService
}

func newIncomeFixture() *incomeFixture {
	f := &incomeFixture{
		nurseRepo:        &fakeNurseRepo{nurses: map[int]*entity.NurseProfile{}},
		taskRepo:         &fakeTaskRepo{counts: map[string][2]int64{}},
		dailySalaryRepo:  &fakeDailySalaryRepo{sums: map[int]decimal.Decimal{}},
		nurseIncomeRepo:  newFakeNurseIncomeRepo(),
		doctorIncomeRepo: newFakeDoctorIncomeRepo(),
		jobRunRepo:       newFakeJobRunRepo(),
	}
	f.svc = NewIncomeService(
		testLogger(),
		f.nurseRepo,
		f.taskRepo,
		f.dailySalaryRepo,
		f.nurseIncomeRepo,
		f.doctorIncomeRepo,
		f.jobRunRepo,
	)
	return f
}

func TestRecalculateDailySalary(t *testing.T) {
	f := newIncomeFixture()
	f.nurseRepo.nurses[1] = &entity.NurseProfile{ID: 1, RatePerTask: dec("10000")}
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.taskRepo.counts[dayKey(1, day)] = [2]int64{4, 3}
	f.dailySalaryRepo.sums[1] = dec("90000")

	err := f.svc.RecalculateDailySalary(nil, 1, day)

	require.NoError(t, err)
	require.Len(t, f.dailySalaryRepo.upserts, 1)
	row := f.dailySalaryRepo.upserts[0]
	assert.Equal(t, 4, row.TotalTasks)
	assert.Equal(t, 3, row.CompletedTasks)
	assert.True(t, dec("30000").Equal(row.Salary), "rate times completed, got %s", row.Salary)
	assert.True(t, dec("90000").Equal(f.nurseRepo.nurses[1].TotalSalary))
	assert.True(t, f.nurseRepo.nurses[1].SalaryPerDay.IsZero(), "past day does not touch the current-day snapshot")
}

func TestRecalculateDailySalaryTruncatesToMidnight(t *testing.T) {
	f := newIncomeFixture()
	f.nurseRepo.nurses[1] = &entity.NurseProfile{ID: 1, RatePerTask: dec("10000")}
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.taskRepo.counts[dayKey(1, day)] = [2]int64{2, 2}

	err := f.svc.RecalculateDailySalary(nil, 1, day.Add(15*time.Hour))

	require.NoError(t, err)
	require.Len(t, f.dailySalaryRepo.upserts, 1)
	assert.Equal(t, day, f.dailySalaryRepo.upserts[0].Date)
}

func TestRecalculateDailySalaryNurseNotFound(t *testing.T) {
	f := newIncomeFixture()

	err := f.svc.RecalculateDailySalary(nil, 99, time.Now())
	assert.ErrorIs(t, err, ErrNurseNotFound)
}

func TestAddNurseIncomeAccumulates(t *testing.T) {
	f := newIncomeFixture()

	require.NoError(t, f.svc.AddNurseIncome(nil, 1, dec("10000")))
	require.NoError(t, f.svc.AddNurseIncome(nil, 1, dec("15000")))

	assert.True(t, dec("25000").Equal(f.nurseIncomeRepo.incomes[1].DailyTotal))
}

func TestAddDoctorIncomeAccumulates(t *testing.T) {
	f := newIncomeFixture()

	require.NoError(t, f.svc.AddDoctorIncome(nil, 2, dec("50000")))
	require.NoError(t, f.svc.AddDoctorIncome(nil, 2, dec("70000")))

	assert.True(t, dec("120000").Equal(f.doctorIncomeRepo.incomes[2].MonthlyTotal))
}

func TestRunDailyRolloverFoldsAndResets(t *testing.T) {
	f := newIncomeFixture()
	f.nurseRepo.nurses[1] = &entity.NurseProfile{ID: 1, SalaryPerDay: dec("30000")}
	f.nurseIncomeRepo.incomes[1] = &entity.NurseIncome{
		NurseID:      1,
		DailyTotal:   dec("30000"),
		MonthlyTotal: dec("100000"),
	}
	now := time.Date(2026, time.March, 11, 0, 5, 0, 0, time.UTC)

	require.NoError(t, f.svc.RunDailyRollover(nil, now))

	assert.True(t, f.nurseRepo.nurses[1].SalaryPerDay.IsZero())
	assert.True(t, f.nurseIncomeRepo.incomes[1].DailyTotal.IsZero())
	assert.True(t, dec("130000").Equal(f.nurseIncomeRepo.incomes[1].MonthlyTotal))
	assert.Equal(t, now, f.jobRunRepo.runs[entity.JobDailyRollover].LastRunAt)
}

func TestRunDailyRolloverRunsOncePerDay(t *testing.T) {
	f := newIncomeFixture()
	now := time.Date(2026, time.March, 11, 0, 5, 0, 0, time.UTC)
	require.NoError(t, f.svc.RunDailyRollover(nil, now))

	// Income earned after the sweep must survive a second trigger that day.
	f.nurseIncomeRepo.incomes[1] = &entity.NurseIncome{NurseID: 1, DailyTotal: dec("5000")}
	require.NoError(t, f.svc.RunDailyRollover(nil, now.Add(2*time.Hour)))

	assert.True(t, dec("5000").Equal(f.nurseIncomeRepo.incomes[1].DailyTotal))
	assert.True(t, f.nurseIncomeRepo.incomes[1].MonthlyTotal.IsZero())
}

func TestRunDailyRolloverFiresAgainNextDay(t *testing.T) {
	f := newIncomeFixture()
	now := time.Date(2026, time.March, 11, 0, 5, 0, 0, time.UTC)
	require.NoError(t, f.svc.RunDailyRollover(nil, now))

	f.nurseIncomeRepo.incomes[1] = &entity.NurseIncome{NurseID: 1, DailyTotal: dec("5000")}
	require.NoError(t, f.svc.RunDailyRollover(nil, now.Add(24*time.Hour)))

	assert.True(t, f.nurseIncomeRepo.incomes[1].DailyTotal.IsZero())
	assert.True(t, dec("5000").Equal(f.nurseIncomeRepo.incomes[1].MonthlyTotal))
}

func TestRunMonthlyRolloverOnlyOnFirstDay(t *testing.T) {
	f := newIncomeFixture()
	f.doctorIncomeRepo.incomes[2] = &entity.DoctorIncome{DoctorID: 2, MonthlyTotal: dec("500000")}

	require.NoError(t, f.svc.RunMonthlyRollover(nil, time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)))
	assert.True(t, dec("500000").Equal(f.doctorIncomeRepo.incomes[2].MonthlyTotal), "mid-month trigger is a no-op")

	firstOfApril := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.svc.RunMonthlyRollover(nil, firstOfApril))
	assert.True(t, f.doctorIncomeRepo.incomes[2].MonthlyTotal.IsZero())

	// Same month again: income earned on the 1st after the sweep survives.
	f.doctorIncomeRepo.incomes[2].MonthlyTotal = dec("20000")
	require.NoError(t, f.svc.RunMonthlyRollover(nil, firstOfApril.Add(time.Hour)))
	assert.True(t, dec("20000").Equal(f.doctorIncomeRepo.incomes[2].MonthlyTotal))
}
