package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func DoctorToResponse(profile *entity.DoctorProfile, monthlyIncome decimal.Decimal) *dto.DoctorResponse {
	active := true
	if profile.Active != nil {
		active = *profile.Active
	}
	return &dto.DoctorResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		FullName:       profile.User.FullName(),
		PhoneNumber:    profile.User.PhoneNumber,
		Specialization: profile.Specialization,
		WorkStartDate:  profile.WorkStartDate.Format(dateLayout),
		SalaryPerCase:  profile.SalaryPerCase,
		MonthlyIncome:  monthlyIncome,
		Active:         active,
	}
}

func NurseToResponse(profile *entity.NurseProfile) *dto.NurseResponse {
	active := true
	if profile.Active != nil {
		active = *profile.Active
	}
	return &dto.NurseResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FullName:        profile.User.FullName(),
		PhoneNumber:     profile.User.PhoneNumber,
		WorkStartDate:   profile.WorkStartDate.Format(dateLayout),
		RatePerTask:     profile.RatePerTask,
		SalaryPerDay:    profile.SalaryPerDay,
		TotalSalary:     profile.TotalSalary,
		ExperienceLevel: profile.ExperienceLevel,
		Active:          active,
	}
}

func NursesToResponses(profiles []entity.NurseProfile) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *NurseToResponse(&profiles[i]))
	}
	return responses
}

func ModeratorToResponse(profile *entity.ModeratorProfile) *dto.ModeratorResponse {
	active := true
	if profile.Active != nil {
		active = *profile.Active
	}
	return &dto.ModeratorResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FullName:      profile.User.FullName(),
		PhoneNumber:   profile.User.PhoneNumber,
		WorkStartDate: profile.WorkStartDate.Format(dateLayout),
		Salary:        profile.Salary,
		Active:        active,
	}
}

func ClientToResponse(profile *entity.ClientProfile) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:               profile.ID,
		UserID:           profile.UserID,
		FullName:         profile.User.FullName(),
		PhoneNumber:      profile.User.PhoneNumber,
		ExtraPhoneNumber: profile.ExtraPhoneNumber,
		Address:          profile.Address,
		Language:         profile.Language,
		Pets:             PetsToResponses(profile.Pets),
	}
}

func ClientsToResponses(profiles []entity.ClientProfile) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *ClientToResponse(&profiles[i]))
	}
	return responses
}
