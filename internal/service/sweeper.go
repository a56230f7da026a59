package service

import (
	"time"

	"vetclinic-backoffice/config"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sweeper owns the periodic background jobs: reclaiming overdue rooms,
// the daily and monthly income rollovers, opening the day's revenue row and
// revisit reminders. Every job body runs inside one transaction.
type Sweeper struct {
	db             *gorm.DB
	log            *logrus.Logger
	cfg            config.SchedulerConfig
	cron           *cron.Cron
	roomService    RoomService
	incomeService  IncomeService
	cardRepo       repository.MedicalCardRepository
	paymentDayRepo repository.PaymentDayRepository
}

func NewSweeper(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SchedulerConfig,
	roomService RoomService,
	incomeService IncomeService,
	cardRepo repository.MedicalCardRepository,
	paymentDayRepo repository.PaymentDayRepository,
) *Sweeper {
	return &Sweeper{
		db:             db,
		log:            log,
		cfg:            cfg,
		cron:           cron.New(),
		roomService:    roomService,
		incomeService:  incomeService,
		cardRepo:       cardRepo,
		paymentDayRepo: paymentDayRepo,
	}
}

func (s *Sweeper) Start() error {
	jobs := []struct {
		spec string
		name string
		fn   func()
	}{
		{s.cfg.RoomReclaimSpec, "room_reclaim", s.reclaimRooms},
		{s.cfg.DailyRolloverSpec, "daily_rollover", s.dailyRollover},
		{s.cfg.MonthlyRolloverSpec, "monthly_rollover", s.monthlyRollover},
		{s.cfg.PaymentDaySpec, "payment_day", s.openPaymentDay},
		{s.cfg.RevisitReminderSpec, "revisit_reminder", s.revisitReminders},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, job.fn); err != nil {
			s.log.Errorf("Failed to schedule %s (%s): %+v", job.name, job.spec, err)
			return err
		}
		s.log.Infof("Scheduled %s at %s", job.name, job.spec)
	}
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) reclaimRooms() {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		freed, err := s.roomService.ReleaseDue(tx, time.Now())
		if err != nil {
			return err
		}
		if freed > 0 {
			s.log.Infof("Reclaimed %d overdue stationary rooms", freed)
		}
		return nil
	})
	if err != nil {
		s.log.Errorf("Room reclaim sweep failed: %+v", err)
	}
}

func (s *Sweeper) dailyRollover() {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.incomeService.RunDailyRollover(tx, time.Now())
	})
	if err != nil {
		s.log.Errorf("Daily rollover failed: %+v", err)
	}
}

func (s *Sweeper) monthlyRollover() {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.incomeService.RunMonthlyRollover(tx, time.Now())
	})
	if err != nil {
		s.log.Errorf("Monthly rollover failed: %+v", err)
	}
}

func (s *Sweeper) openPaymentDay() {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.paymentDayRepo.EnsureRow(tx, dateOf(time.Now()))
	})
	if err != nil {
		s.log.Errorf("Payment day sweep failed: %+v", err)
	}
}

func (s *Sweeper) revisitReminders() {
	// Remind one and two days ahead of the revisit.
	today := dateOf(time.Now())
	cards, err := s.cardRepo.FindByRevisitDates(s.db, []time.Time{today.AddDate(0, 0, 1), today.AddDate(0, 0, 2)})
	if err != nil {
		s.log.Errorf("Revisit reminder sweep failed: %+v", err)
		return
	}
	for _, card := range cards {
		s.log.WithFields(logrus.Fields{
			"card_id":      card.ID,
			"client":       card.Client.User.FullName(),
			"pet":          card.Pet.Name,
			"revisit_date": card.RevisitDate.Format("2006-01-02"),
		}).Info("Revisit due")
	}
}
