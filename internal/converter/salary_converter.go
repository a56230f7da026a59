package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func NurseDailySalaryToResponse(salary *entity.NurseDailySalary) *dto.NurseDailySalaryResponse {
	resp := &dto.NurseDailySalaryResponse{
		NurseID:        salary.NurseID,
		Date:           salary.Date.Format(dateLayout),
		TotalTasks:     salary.TotalTasks,
		CompletedTasks: salary.CompletedTasks,
		Salary:         salary.Salary,
	}
	if salary.Nurse.ID != 0 {
		resp.NurseName = salary.Nurse.User.FullName()
	}
	return resp
}

func NurseDailySalariesToResponses(salaries []entity.NurseDailySalary) []dto.NurseDailySalaryResponse {
	responses := make([]dto.NurseDailySalaryResponse, 0, len(salaries))
	for i := range salaries {
		responses = append(responses, *NurseDailySalaryToResponse(&salaries[i]))
	}
	return responses
}

func NurseIncomeToResponse(income *entity.NurseIncome) *dto.NurseIncomeResponse {
	return &dto.NurseIncomeResponse{
		NurseID:      income.NurseID,
		DailyTotal:   income.DailyTotal,
		MonthlyTotal: income.MonthlyTotal,
	}
}

func DoctorIncomeToResponse(income *entity.DoctorIncome) *dto.DoctorIncomeResponse {
	return &dto.DoctorIncomeResponse{
		DoctorID:     income.DoctorID,
		MonthlyTotal: income.MonthlyTotal,
	}
}
