package repository

import (
	"time"

	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MedicalCardRepository interface {
	Create(db *gorm.DB, card *entity.MedicalCard) error
	FindByID(db *gorm.DB, id int) (*entity.MedicalCard, error)
	FindAll(db *gorm.DB) ([]entity.MedicalCard, error)
	Update(db *gorm.DB, card *entity.MedicalCard) error

	// UpdateTotalFee performs the narrow single-column write used by the
	// pricing recompute; it must not touch any other column.
	UpdateTotalFee(db *gorm.DB, cardID int, total decimal.Decimal) error

	// ReplaceServices / ReplaceMedicines overwrite the read-convenience
	// membership sets.
	ReplaceServices(db *gorm.DB, card *entity.MedicalCard, services []entity.Service) error
	ReplaceMedicines(db *gorm.DB, card *entity.MedicalCard, medicines []entity.Medicine) error

	FindServices(db *gorm.DB, cardID int) ([]entity.Service, error)
	FindMedicines(db *gorm.DB, cardID int) ([]entity.Medicine, error)

	// FindByRevisitDates returns cards whose revisit date matches any of the
	// given days; used by the reminder sweep.
	FindByRevisitDates(db *gorm.DB, dates []time.Time) ([]entity.MedicalCard, error)
}

type ServiceSelectionRepository interface {
	FindByCardID(db *gorm.DB, cardID int) ([]entity.ServiceSelection, error)
	// ReplaceForCard clears all selection rows for the card and inserts the
	// given set; applying a selection is a full replace, not a merge.
	ReplaceForCard(db *gorm.DB, cardID int, selections []entity.ServiceSelection) error
}
