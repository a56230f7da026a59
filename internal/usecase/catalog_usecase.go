package usecase

import (
	"context"
	"errors"

	"vetclinic-backoffice/internal/converter"
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrInvalidPriceRange = errors.New("price_up_to must be greater than or equal to price")
)

type CatalogUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context) (*dto.ServiceListResponse, error)
	DeleteService(ctx context.Context, id int) error

	CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	UpdateMedicine(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	ListMedicines(ctx context.Context) (*dto.MedicineListResponse, error)
	DeleteMedicine(ctx context.Context, id int) error
}

type catalogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	medicineRepo repository.MedicineRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	medicineRepo repository.MedicineRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		medicineRepo: medicineRepo,
	}
}

func (u *catalogUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if req.PriceUpTo != nil && req.PriceUpTo.LessThan(req.Price) {
		return nil, ErrInvalidPriceRange
	}

	service := &entity.Service{
		Name:        req.Name,
		Price:       req.Price,
		PriceUpTo:   req.PriceUpTo,
		Description: req.Description,
	}
	if err := u.serviceRepo.Create(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}
	return converter.ServiceToResponse(service), nil
}

func (u *catalogUsecase) UpdateService(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.PriceUpTo != nil {
		service.PriceUpTo = req.PriceUpTo
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if service.PriceUpTo != nil && service.PriceUpTo.LessThan(service.Price) {
		return nil, ErrInvalidPriceRange
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, err
	}
	return converter.ServiceToResponse(service), nil
}

func (u *catalogUsecase) ListServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) DeleteService(ctx context.Context, id int) error {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}
	return u.serviceRepo.Delete(u.db.WithContext(ctx), id)
}

func (u *catalogUsecase) CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	expireDate, err := parseDate(req.ExpireDate)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		Name:          req.Name,
		Quantity:      req.Quantity,
		OriginalPrice: req.OriginalPrice,
		Price:         req.Price,
		ExpireDate:    expireDate,
		Description:   req.Description,
	}
	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *catalogUsecase) UpdateMedicine(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Quantity != nil {
		medicine.Quantity = *req.Quantity
	}
	if req.OriginalPrice != nil {
		medicine.OriginalPrice = req.OriginalPrice
	}
	if req.Price != nil {
		medicine.Price = *req.Price
	}
	if req.ExpireDate != nil {
		expireDate, err := parseDate(*req.ExpireDate)
		if err != nil {
			return nil, err
		}
		medicine.ExpireDate = expireDate
	}
	if req.Description != nil {
		medicine.Description = req.Description
	}

	if err := u.medicineRepo.Update(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to update medicine %d: %+v", id, err)
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *catalogUsecase) ListMedicines(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}
	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

func (u *catalogUsecase) DeleteMedicine(ctx context.Context, id int) error {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}
	return u.medicineRepo.Delete(u.db.WithContext(ctx), id)
}
