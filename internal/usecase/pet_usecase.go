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

var ErrPetNotFound = errors.New("pet not found")

type PetUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PetResponse, error)
	List(ctx context.Context) (*dto.PetListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, id int) error
}

type petUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	petRepo    repository.PetRepository
	clientRepo repository.ClientProfileRepository
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	clientRepo repository.ClientProfileRepository,
) PetUsecase {
	return &petUsecase{
		db:         db,
		log:        log,
		petRepo:    petRepo,
		clientRepo: clientRepo,
	}
}

func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	pet := &entity.Pet{
		ClientID: req.ClientID,
		Name:     req.Name,
		Breed:    req.Breed,
		Age:      req.Age,
		Gender:   entity.PetGender(req.Gender),
		Notes:    req.Notes,
	}
	if err := u.petRepo.Create(u.db.WithContext(ctx), pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetByID(ctx context.Context, id int) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) List(ctx context.Context) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}
	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) Update(ctx context.Context, id int, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Breed != nil {
		pet.Breed = req.Breed
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Gender != nil {
		pet.Gender = entity.PetGender(*req.Gender)
	}
	if req.Notes != nil {
		pet.Notes = req.Notes
	}

	if err := u.petRepo.Update(u.db.WithContext(ctx), pet); err != nil {
		u.log.Warnf("Failed to update pet %d: %+v", id, err)
		return nil, err
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Delete(ctx context.Context, id int) error {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}
	return u.petRepo.Delete(u.db.WithContext(ctx), id)
}
