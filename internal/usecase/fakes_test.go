package usecase

import (
	"io"
	"testing"
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wires gorm over sqlmock. Repository access is faked out, so
// tests only script the transaction boundary (Begin, then Commit or
// Rollback).
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

type fakeScheduleRepo struct {
	schedules map[int]*entity.Schedule
}

func (f *fakeScheduleRepo) Create(db *gorm.DB, schedule *entity.Schedule) error { return nil }

func (f *fakeScheduleRepo) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) FindByCardID(db *gorm.DB, cardID int) ([]entity.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) FindAll(db *gorm.DB) ([]entity.Schedule, error)      { return nil, nil }
func (f *fakeScheduleRepo) Update(db *gorm.DB, schedule *entity.Schedule) error { return nil }
func (f *fakeScheduleRepo) Delete(db *gorm.DB, id int) error                    { return nil }

type fakeTaskRepo struct {
	tasks  map[int]*entity.Task
	nextID int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int]*entity.Task{}, nextID: 1}
}

func (f *fakeTaskRepo) Create(db *gorm.DB, task *entity.Task) error {
	if task.ID == 0 {
		task.ID = f.nextID
		f.nextID++
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) FindByID(db *gorm.DB, id int) (*entity.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) CountByNurseAndDay(db *gorm.DB, nurseID int, day time.Time) (int64, int64, error) {
	return 0, 0, nil
}

func (f *fakeTaskRepo) Update(db *gorm.DB, task *entity.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(db *gorm.DB, id int) error {
	delete(f.tasks, id)
	return nil
}

type fakeDoctorTaskRepo struct {
	tasks  map[int]*entity.DoctorTask
	nextID int
}

func newFakeDoctorTaskRepo() *fakeDoctorTaskRepo {
	return &fakeDoctorTaskRepo{tasks: map[int]*entity.DoctorTask{}, nextID: 1}
}

func (f *fakeDoctorTaskRepo) Create(db *gorm.DB, task *entity.DoctorTask) error {
	if task.ID == 0 {
		task.ID = f.nextID
		f.nextID++
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeDoctorTaskRepo) FindByID(db *gorm.DB, id int) (*entity.DoctorTask, error) {
	return f.tasks[id], nil
}

func (f *fakeDoctorTaskRepo) FindByCardID(db *gorm.DB, cardID int) ([]entity.DoctorTask, error) {
	return nil, nil
}

func (f *fakeDoctorTaskRepo) Update(db *gorm.DB, task *entity.DoctorTask) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeDoctorTaskRepo) Delete(db *gorm.DB, id int) error {
	delete(f.tasks, id)
	return nil
}

type fakeCardRepo struct {
	cards map[int]*entity.MedicalCard
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[int]*entity.MedicalCard{}}
}

func (f *fakeCardRepo) Create(db *gorm.DB, card *entity.MedicalCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) FindByID(db *gorm.DB, id int) (*entity.MedicalCard, error) {
	return f.cards[id], nil
}

func (f *fakeCardRepo) FindAll(db *gorm.DB) ([]entity.MedicalCard, error) { return nil, nil }

func (f *fakeCardRepo) Update(db *gorm.DB, card *entity.MedicalCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) UpdateTotalFee(db *gorm.DB, cardID int, total decimal.Decimal) error {
	return nil
}

func (f *fakeCardRepo) ReplaceServices(db *gorm.DB, card *entity.MedicalCard, services []entity.Service) error {
	return nil
}

func (f *fakeCardRepo) ReplaceMedicines(db *gorm.DB, card *entity.MedicalCard, medicines []entity.Medicine) error {
	return nil
}

func (f *fakeCardRepo) FindServices(db *gorm.DB, cardID int) ([]entity.Service, error) {
	return nil, nil
}

func (f *fakeCardRepo) FindMedicines(db *gorm.DB, cardID int) ([]entity.Medicine, error) {
	return nil, nil
}

func (f *fakeCardRepo) FindByRevisitDates(db *gorm.DB, dates []time.Time) ([]entity.MedicalCard, error) {
	return nil, nil
}

type fakeNurseRepo struct {
	nurses map[int]*entity.NurseProfile
}

func (f *fakeNurseRepo) Create(db *gorm.DB, profile *entity.NurseProfile) error { return nil }

func (f *fakeNurseRepo) FindByID(db *gorm.DB, id int) (*entity.NurseProfile, error) {
	return f.nurses[id], nil
}

func (f *fakeNurseRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.NurseProfile, error) {
	for _, n := range f.nurses {
		if n.UserID == userID {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNurseRepo) FindAll(db *gorm.DB) ([]entity.NurseProfile, error)     { return nil, nil }
func (f *fakeNurseRepo) Update(db *gorm.DB, profile *entity.NurseProfile) error { return nil }
func (f *fakeNurseRepo) ResetAllSalaryPerDay(db *gorm.DB) (int64, error)        { return 0, nil }

type fakeDoctorRepo struct {
	doctors map[int]*entity.DoctorProfile
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }

func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)     { return nil, nil }
func (f *fakeDoctorRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }

type fakeModeratorRepo struct {
	moderators map[int]*entity.ModeratorProfile
}

func (f *fakeModeratorRepo) Create(db *gorm.DB, profile *entity.ModeratorProfile) error { return nil }

func (f *fakeModeratorRepo) FindByID(db *gorm.DB, id int) (*entity.ModeratorProfile, error) {
	return f.moderators[id], nil
}

func (f *fakeModeratorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ModeratorProfile, error) {
	for _, m := range f.moderators {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeModeratorRepo) Update(db *gorm.DB, profile *entity.ModeratorProfile) error { return nil }

type fakeServiceRepo struct {
	services map[int]entity.Service
}

func (f *fakeServiceRepo) Create(db *gorm.DB, service *entity.Service) error { return nil }

func (f *fakeServiceRepo) FindByID(db *gorm.DB, id int) (*entity.Service, error) {
	if svc, ok := f.services[id]; ok {
		return &svc, nil
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindByIDs(db *gorm.DB, ids []int) ([]entity.Service, error) {
	var out []entity.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) FindAll(db *gorm.DB) ([]entity.Service, error)     { return nil, nil }
func (f *fakeServiceRepo) Update(db *gorm.DB, service *entity.Service) error { return nil }
func (f *fakeServiceRepo) Delete(db *gorm.DB, id int) error                  { return nil }

type fakePaymentRepo struct {
	payments map[int]*entity.Payment
	nextID   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int]*entity.Payment{}, nextID: 1}
}

func (f *fakePaymentRepo) Create(db *gorm.DB, payment *entity.Payment) error {
	if payment.ID == 0 {
		payment.ID = f.nextID
		f.nextID++
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(db *gorm.DB, id int) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByCardID(db *gorm.DB, cardID int) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.MedicalCardID == cardID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindAll(db *gorm.DB) ([]entity.Payment, error) { return nil, nil }

func (f *fakePaymentRepo) Update(db *gorm.DB, payment *entity.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

type fakePaymentDayRepo struct{}

func (f *fakePaymentDayRepo) Increment(db *gorm.DB, date time.Time, amount decimal.Decimal) error {
	return nil
}

func (f *fakePaymentDayRepo) EnsureRow(db *gorm.DB, date time.Time) error { return nil }

func (f *fakePaymentDayRepo) FindByDate(db *gorm.DB, date time.Time) (*entity.PaymentDay, error) {
	return nil, nil
}

func (f *fakePaymentDayRepo) FindAll(db *gorm.DB) ([]entity.PaymentDay, error) { return nil, nil }

type salaryRecalc struct {
	nurseID int
	day     time.Time
}

// fakeIncomeService records the calls the task pipeline makes into the
// income engine.
type fakeIncomeService struct {
	recalcs       []salaryRecalc
	nurseIncomes  map[int]decimal.Decimal
	doctorIncomes map[int]decimal.Decimal
}

func newFakeIncomeService() *fakeIncomeService {
	return &fakeIncomeService{
		nurseIncomes:  map[int]decimal.Decimal{},
		doctorIncomes: map[int]decimal.Decimal{},
	}
}

func (f *fakeIncomeService) RecalculateDailySalary(tx *gorm.DB, nurseID int, day time.Time) error {
	f.recalcs = append(f.recalcs, salaryRecalc{nurseID: nurseID, day: day})
	return nil
}

func (f *fakeIncomeService) AddNurseIncome(tx *gorm.DB, nurseID int, amount decimal.Decimal) error {
	f.nurseIncomes[nurseID] = f.nurseIncomes[nurseID].Add(amount)
	return nil
}

func (f *fakeIncomeService) AddDoctorIncome(tx *gorm.DB, doctorID int, amount decimal.Decimal) error {
	f.doctorIncomes[doctorID] = f.doctorIncomes[doctorID].Add(amount)
	return nil
}

func (f *fakeIncomeService) RunDailyRollover(tx *gorm.DB, now time.Time) error   { return nil }
func (f *fakeIncomeService) RunMonthlyRollover(tx *gorm.DB, now time.Time) error { return nil }

type settleCall struct {
	paymentID  int
	prevStatus entity.PaymentStatus
}

type fakeSettlementService struct {
	calls []settleCall
}

func (f *fakeSettlementService) Settle(tx *gorm.DB, payment *entity.Payment, prevStatus entity.PaymentStatus) error {
	f.calls = append(f.calls, settleCall{paymentID: payment.ID, prevStatus: prevStatus})
	return nil
}

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) Record(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	f.actions = append(f.actions, action)
	return nil
}
