package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func UserToResponse(user *entity.User) *dto.UserResponse {
	isActive := true
	if user.IsActive != nil {
		isActive = *user.IsActive
	}
	return &dto.UserResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName(),
		Role:        user.Role.Name,
		TelegramID:  user.TelegramID,
		IsActive:    isActive,
		CreatedAt:   user.CreatedAt,
	}
}
