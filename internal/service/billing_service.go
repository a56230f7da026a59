package service

import (
	"errors"

	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUnknownService  = errors.New("one or more services do not exist")
	ErrUnknownMedicine = errors.New("one or more medicines do not exist")
	ErrInvalidPrice    = errors.New("selection price must match the service's fixed price")
	ErrPriceOutOfRange = errors.New("selection price is outside the service price range")
)

// ServicePick is one requested service line. A nil Price means "use the
// service's base price".
type ServicePick struct {
	ServiceID int
	Price     *decimal.Decimal
}

type BillingService interface {
	// ApplySelections replaces the card's service and medicine selections in
	// full and recomputes the total fee. Prices are validated against each
	// service's fixed-or-ranged contract before anything is written.
	ApplySelections(tx *gorm.DB, card *entity.MedicalCard, picks []ServicePick, medicineIDs []int) (decimal.Decimal, error)
	// RecomputeTotal rebuilds the card's total fee from its current
	// selections and medicines and persists it with a narrow update.
	RecomputeTotal(tx *gorm.DB, cardID int) (decimal.Decimal, error)
}

type billingService struct {
	log           *logrus.Logger
	cardRepo      repository.MedicalCardRepository
	selectionRepo repository.ServiceSelectionRepository
	serviceRepo   repository.ServiceRepository
	medicineRepo  repository.MedicineRepository
}

func NewBillingService(
	log *logrus.Logger,
	cardRepo repository.MedicalCardRepository,
	selectionRepo repository.ServiceSelectionRepository,
	serviceRepo repository.ServiceRepository,
	medicineRepo repository.MedicineRepository,
) BillingService {
	return &billingService{
		log:           log,
		cardRepo:      cardRepo,
		selectionRepo: selectionRepo,
		serviceRepo:   serviceRepo,
		medicineRepo:  medicineRepo,
	}
}

func (s *billingService) ApplySelections(tx *gorm.DB, card *entity.MedicalCard, picks []ServicePick, medicineIDs []int) (decimal.Decimal, error) {
	serviceIDs := make([]int, 0, len(picks))
	for _, pick := range picks {
		serviceIDs = append(serviceIDs, pick.ServiceID)
	}

	services, err := s.serviceRepo.FindByIDs(tx, serviceIDs)
	if err != nil {
		return decimal.Zero, err
	}
	if len(services) != len(serviceIDs) {
		return decimal.Zero, ErrUnknownService
	}
	byID := make(map[int]*entity.Service, len(services))
	for i := range services {
		byID[services[i].ID] = &services[i]
	}

	selections := make([]entity.ServiceSelection, 0, len(picks))
	for _, pick := range picks {
		svc := byID[pick.ServiceID]
		price := svc.Price
		if pick.Price != nil {
			price = *pick.Price
		}
		if !svc.AcceptsPrice(price) {
			s.log.Warnf("Rejected price %s for service %d on card %d", price, svc.ID, card.ID)
			if svc.HasPriceRange() {
				return decimal.Zero, ErrPriceOutOfRange
			}
			return decimal.Zero, ErrInvalidPrice
		}
		selections = append(selections, entity.ServiceSelection{
			MedicalCardID: card.ID,
			ServiceID:     svc.ID,
			Price:         price,
		})
	}

	medicines, err := s.medicineRepo.FindByIDs(tx, medicineIDs)
	if err != nil {
		return decimal.Zero, err
	}
	if len(medicines) != len(medicineIDs) {
		return decimal.Zero, ErrUnknownMedicine
	}

	if err := s.selectionRepo.ReplaceForCard(tx, card.ID, selections); err != nil {
		return decimal.Zero, err
	}
	if err := s.cardRepo.ReplaceServices(tx, card, services); err != nil {
		return decimal.Zero, err
	}
	if err := s.cardRepo.ReplaceMedicines(tx, card, medicines); err != nil {
		return decimal.Zero, err
	}

	return s.RecomputeTotal(tx, card.ID)
}

func (s *billingService) RecomputeTotal(tx *gorm.DB, cardID int) (decimal.Decimal, error) {
	total := decimal.Zero

	selections, err := s.selectionRepo.FindByCardID(tx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(selections) > 0 {
		for _, sel := range selections {
			total = total.Add(sel.Price)
		}
	} else {
		// Cards linked to services without priced line items fall back to
		// the base prices.
		services, err := s.cardRepo.FindServices(tx, cardID)
		if err != nil {
			return decimal.Zero, err
		}
		for _, svc := range services {
			total = total.Add(svc.Price)
		}
	}

	medicines, err := s.cardRepo.FindMedicines(tx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, m := range medicines {
		total = total.Add(m.Price)
	}

	if err := s.cardRepo.UpdateTotalFee(tx, cardID, total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
