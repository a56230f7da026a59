package repository

import (
	"errors"
	"time"

	"vetclinic-backoffice/internal/domain/entity"
	domainRepo "vetclinic-backoffice/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicalCardRepository struct{}

func NewMedicalCardRepository() domainRepo.MedicalCardRepository {
	return &medicalCardRepository{}
}

func (r *medicalCardRepository) Create(db *gorm.DB, card *entity.MedicalCard) error {
	return db.Create(card).Error
}

func (r *medicalCardRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalCard, error) {
	var card entity.MedicalCard
	err := db.
		Preload("Client.User").
		Preload("Pet").
		Preload("Doctor.User").
		Preload("Nurse.User").
		Preload("StationaryRoom").
		Preload("Services").
		Preload("Medicines").
		Where("id = ?", id).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *medicalCardRepository) FindAll(db *gorm.DB) ([]entity.MedicalCard, error) {
	var cards []entity.MedicalCard
	err := db.
		Preload("Client.User").
		Preload("Pet").
		Preload("Doctor.User").
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// Update persists the card's own columns. Associations are managed through
// the Replace methods, never as a side effect of saving the card.
func (r *medicalCardRepository) Update(db *gorm.DB, card *entity.MedicalCard) error {
	return db.Omit(clause.Associations).Save(card).Error
}

// UpdateTotalFee writes the derived fee with a single-column update. Going
// through Save here would fire the card's hooks and association writes again.
func (r *medicalCardRepository) UpdateTotalFee(db *gorm.DB, cardID int, total decimal.Decimal) error {
	return db.Model(&entity.MedicalCard{}).
		Where("id = ?", cardID).
		UpdateColumn("total_fee", total).Error
}

func (r *medicalCardRepository) ReplaceServices(db *gorm.DB, card *entity.MedicalCard, services []entity.Service) error {
	return db.Model(card).Association("Services").Replace(services)
}

func (r *medicalCardRepository) ReplaceMedicines(db *gorm.DB, card *entity.MedicalCard, medicines []entity.Medicine) error {
	return db.Model(card).Association("Medicines").Replace(medicines)
}

func (r *medicalCardRepository) FindServices(db *gorm.DB, cardID int) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Model(&entity.MedicalCard{ID: cardID}).Association("Services").Find(&services)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *medicalCardRepository) FindMedicines(db *gorm.DB, cardID int) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Model(&entity.MedicalCard{ID: cardID}).Association("Medicines").Find(&medicines)
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicalCardRepository) FindByRevisitDates(db *gorm.DB, dates []time.Time) ([]entity.MedicalCard, error) {
	var cards []entity.MedicalCard
	err := db.
		Preload("Client.User").
		Preload("Pet").
		Where("revisit_date IN ?", dates).
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

type serviceSelectionRepository struct{}

func NewServiceSelectionRepository() domainRepo.ServiceSelectionRepository {
	return &serviceSelectionRepository{}
}

func (r *serviceSelectionRepository) FindByCardID(db *gorm.DB, cardID int) ([]entity.ServiceSelection, error) {
	var selections []entity.ServiceSelection
	err := db.Preload("Service").
		Where("medical_card_id = ?", cardID).
		Find(&selections).Error
	if err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *serviceSelectionRepository) ReplaceForCard(db *gorm.DB, cardID int, selections []entity.ServiceSelection) error {
	if err := db.Where("medical_card_id = ?", cardID).
		Delete(&entity.ServiceSelection{}).Error; err != nil {
		return err
	}
	if len(selections) == 0 {
		return nil
	}
	return db.Create(&selections).Error
}
