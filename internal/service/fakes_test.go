package service

import (
	"fmt"
	"io"
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func dayKey(nurseID int, day time.Time) string {
	return fmt.Sprintf("%d|%s", nurseID, day.Format("2006-01-02"))
}

type fakeCardRepo struct {
	cards          map[int]*entity.MedicalCard
	cardServices   map[int][]entity.Service
	cardMedicines  map[int][]entity.Medicine
	totalFees      map[int]decimal.Decimal
	updated        []*entity.MedicalCard
	revisitQueries [][]time.Time
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{
		cards:         map[int]*entity.MedicalCard{},
		cardServices:  map[int][]entity.Service{},
		cardMedicines: map[int][]entity.Medicine{},
		totalFees:     map[int]decimal.Decimal{},
	}
}

func (f *fakeCardRepo) Create(db *gorm.DB, card *entity.MedicalCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) FindByID(db *gorm.DB, id int) (*entity.MedicalCard, error) {
	return f.cards[id], nil
}

func (f *fakeCardRepo) FindAll(db *gorm.DB) ([]entity.MedicalCard, error) {
	return nil, nil
}

func (f *fakeCardRepo) Update(db *gorm.DB, card *entity.MedicalCard) error {
	f.cards[card.ID] = card
	f.updated = append(f.updated, card)
	return nil
}

func (f *fakeCardRepo) UpdateTotalFee(db *gorm.DB, cardID int, total decimal.Decimal) error {
	f.totalFees[cardID] = total
	return nil
}

func (f *fakeCardRepo) ReplaceServices(db *gorm.DB, card *entity.MedicalCard, services []entity.Service) error {
	f.cardServices[card.ID] = services
	return nil
}

func (f *fakeCardRepo) ReplaceMedicines(db *gorm.DB, card *entity.MedicalCard, medicines []entity.Medicine) error {
	f.cardMedicines[card.ID] = medicines
	return nil
}

func (f *fakeCardRepo) FindServices(db *gorm.DB, cardID int) ([]entity.Service, error) {
	return f.cardServices[cardID], nil
}

func (f *fakeCardRepo) FindMedicines(db *gorm.DB, cardID int) ([]entity.Medicine, error) {
	return f.cardMedicines[cardID], nil
}

func (f *fakeCardRepo) FindByRevisitDates(db *gorm.DB, dates []time.Time) ([]entity.MedicalCard, error) {
	f.revisitQueries = append(f.revisitQueries, dates)
	return nil, nil
}

type fakeSelectionRepo struct {
	selections map[int][]entity.ServiceSelection
}

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{selections: map[int][]entity.ServiceSelection{}}
}

func (f *fakeSelectionRepo) FindByCardID(db *gorm.DB, cardID int) ([]entity.ServiceSelection, error) {
	return f.selections[cardID], nil
}

func (f *fakeSelectionRepo) ReplaceForCard(db *gorm.DB, cardID int, selections []entity.ServiceSelection) error {
	f.selections[cardID] = selections
	return nil
}

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

type fakeMedicineRepo struct {
	medicines map[int]entity.Medicine
}

func (f *fakeMedicineRepo) Create(db *gorm.DB, medicine *entity.Medicine) error { return nil }

func (f *fakeMedicineRepo) FindByID(db *gorm.DB, id int) (*entity.Medicine, error) {
	if m, ok := f.medicines[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (f *fakeMedicineRepo) FindByIDs(db *gorm.DB, ids []int) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, id := range ids {
		if m, ok := f.medicines[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMedicineRepo) FindAll(db *gorm.DB) ([]entity.Medicine, error)      { return nil, nil }
func (f *fakeMedicineRepo) Update(db *gorm.DB, medicine *entity.Medicine) error { return nil }
func (f *fakeMedicineRepo) Delete(db *gorm.DB, id int) error                    { return nil }

type fakeRoomRepo struct {
	rooms map[int]*entity.StationaryRoom
	saved []*entity.StationaryRoom
}

func newFakeRoomRepo(rooms ...*entity.StationaryRoom) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: map[int]*entity.StationaryRoom{}}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) Create(db *gorm.DB, room *entity.StationaryRoom) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(db *gorm.DB, id int) (*entity.StationaryRoom, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.StationaryRoom, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByPetIDForUpdate(db *gorm.DB, petID int, excludeRoomID int) (*entity.StationaryRoom, error) {
	for _, room := range f.rooms {
		if room.ID != excludeRoomID && room.PetID != nil && *room.PetID == petID {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(db *gorm.DB, freeOnly bool) ([]entity.StationaryRoom, error) {
	return nil, nil
}

func (f *fakeRoomRepo) FindDueForRelease(db *gorm.DB, now time.Time) ([]entity.StationaryRoom, error) {
	var due []entity.StationaryRoom
	for _, room := range f.rooms {
		if room.PetID != nil && room.ReleaseDate != nil && !room.ReleaseDate.After(now) {
			due = append(due, *room)
		}
	}
	return due, nil
}

func (f *fakeRoomRepo) Save(db *gorm.DB, room *entity.StationaryRoom) error {
	f.rooms[room.ID] = room
	f.saved = append(f.saved, room)
	return nil
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

func (f *fakeNurseRepo) FindAll(db *gorm.DB) ([]entity.NurseProfile, error) { return nil, nil }

func (f *fakeNurseRepo) Update(db *gorm.DB, profile *entity.NurseProfile) error {
	f.nurses[profile.ID] = profile
	return nil
}

func (f *fakeNurseRepo) ResetAllSalaryPerDay(db *gorm.DB) (int64, error) {
	var reset int64
	for _, n := range f.nurses {
		if !n.SalaryPerDay.IsZero() {
			n.SalaryPerDay = decimal.Zero
			reset++
		}
	}
	return reset, nil
}

// fakeTaskRepo serves the per-day counts the salary recompute is built on.
type fakeTaskRepo struct {
	counts map[string][2]int64
}

func (f *fakeTaskRepo) Create(db *gorm.DB, task *entity.Task) error { return nil }
func (f *fakeTaskRepo) FindByID(db *gorm.DB, id int) (*entity.Task, error) {
	return nil, nil
}
func (f *fakeTaskRepo) FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) CountByNurseAndDay(db *gorm.DB, nurseID int, day time.Time) (int64, int64, error) {
	c := f.counts[dayKey(nurseID, day)]
	return c[0], c[1], nil
}

func (f *fakeTaskRepo) Update(db *gorm.DB, task *entity.Task) error { return nil }
func (f *fakeTaskRepo) Delete(db *gorm.DB, id int) error            { return nil }

type fakeDailySalaryRepo struct {
	upserts []entity.NurseDailySalary
	sums    map[int]decimal.Decimal
}

func (f *fakeDailySalaryRepo) Upsert(db *gorm.DB, salary *entity.NurseDailySalary) error {
	f.upserts = append(f.upserts, *salary)
	return nil
}

func (f *fakeDailySalaryRepo) FindByNurseAndDate(db *gorm.DB, nurseID int, date time.Time) (*entity.NurseDailySalary, error) {
	return nil, nil
}

func (f *fakeDailySalaryRepo) FindByNurseID(db *gorm.DB, nurseID int) ([]entity.NurseDailySalary, error) {
	return nil, nil
}

func (f *fakeDailySalaryRepo) FindAll(db *gorm.DB) ([]entity.NurseDailySalary, error) {
	return nil, nil
}

func (f *fakeDailySalaryRepo) SumByNurse(db *gorm.DB, nurseID int) (decimal.Decimal, error) {
	if f.sums == nil {
		return decimal.Zero, nil
	}
	return f.sums[nurseID], nil
}

type fakeNurseIncomeRepo struct {
	incomes map[int]*entity.NurseIncome
}

func newFakeNurseIncomeRepo() *fakeNurseIncomeRepo {
	return &fakeNurseIncomeRepo{incomes: map[int]*entity.NurseIncome{}}
}

func (f *fakeNurseIncomeRepo) FindByNurseIDForUpdate(db *gorm.DB, nurseID int) (*entity.NurseIncome, error) {
	if income, ok := f.incomes[nurseID]; ok {
		return income, nil
	}
	income := &entity.NurseIncome{NurseID: nurseID}
	f.incomes[nurseID] = income
	return income, nil
}

func (f *fakeNurseIncomeRepo) FindByNurseID(db *gorm.DB, nurseID int) (*entity.NurseIncome, error) {
	return f.incomes[nurseID], nil
}

func (f *fakeNurseIncomeRepo) Save(db *gorm.DB, income *entity.NurseIncome) error {
	f.incomes[income.NurseID] = income
	return nil
}

func (f *fakeNurseIncomeRepo) FoldDailyIntoMonthly(db *gorm.DB) (int64, error) {
	var folded int64
	for _, income := range f.incomes {
		if !income.DailyTotal.IsZero() {
			income.MonthlyTotal = income.MonthlyTotal.Add(income.DailyTotal)
			income.DailyTotal = decimal.Zero
			folded++
		}
	}
	return folded, nil
}

type fakeDoctorIncomeRepo struct {
	incomes map[int]*entity.DoctorIncome
}

func newFakeDoctorIncomeRepo() *fakeDoctorIncomeRepo {
	return &fakeDoctorIncomeRepo{incomes: map[int]*entity.DoctorIncome{}}
}

func (f *fakeDoctorIncomeRepo) FindByDoctorIDForUpdate(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error) {
	if income, ok := f.incomes[doctorID]; ok {
		return income, nil
	}
	income := &entity.DoctorIncome{DoctorID: doctorID}
	f.incomes[doctorID] = income
	return income, nil
}

func (f *fakeDoctorIncomeRepo) FindByDoctorID(db *gorm.DB, doctorID int) (*entity.DoctorIncome, error) {
	return f.incomes[doctorID], nil
}

func (f *fakeDoctorIncomeRepo) Save(db *gorm.DB, income *entity.DoctorIncome) error {
	f.incomes[income.DoctorID] = income
	return nil
}

func (f *fakeDoctorIncomeRepo) ResetAllMonthly(db *gorm.DB) (int64, error) {
	var reset int64
	for _, income := range f.incomes {
		if !income.MonthlyTotal.IsZero() {
			income.MonthlyTotal = decimal.Zero
			reset++
		}
	}
	return reset, nil
}

type fakeJobRunRepo struct {
	runs map[string]*entity.JobRun
}

func newFakeJobRunRepo() *fakeJobRunRepo {
	return &fakeJobRunRepo{runs: map[string]*entity.JobRun{}}
}

func (f *fakeJobRunRepo) GetForUpdate(db *gorm.DB, name string) (*entity.JobRun, error) {
	if run, ok := f.runs[name]; ok {
		return run, nil
	}
	run := &entity.JobRun{Name: name}
	f.runs[name] = run
	return run, nil
}

func (f *fakeJobRunRepo) Save(db *gorm.DB, run *entity.JobRun) error {
	f.runs[run.Name] = run
	return nil
}

type fakePaymentRepo struct {
	payments map[int]*entity.Payment
	updated  []*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(db *gorm.DB, payment *entity.Payment) error {
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
	f.updated = append(f.updated, payment)
	return nil
}

type paymentDayIncrement struct {
	date   time.Time
	amount decimal.Decimal
}

type fakePaymentDayRepo struct {
	increments []paymentDayIncrement
	ensured    []time.Time
}

func (f *fakePaymentDayRepo) Increment(db *gorm.DB, date time.Time, amount decimal.Decimal) error {
	f.increments = append(f.increments, paymentDayIncrement{date: date, amount: amount})
	return nil
}

func (f *fakePaymentDayRepo) EnsureRow(db *gorm.DB, date time.Time) error {
	f.ensured = append(f.ensured, date)
	return nil
}

func (f *fakePaymentDayRepo) FindByDate(db *gorm.DB, date time.Time) (*entity.PaymentDay, error) {
	return nil, nil
}

func (f *fakePaymentDayRepo) FindAll(db *gorm.DB) ([]entity.PaymentDay, error) {
	return nil, nil
}
