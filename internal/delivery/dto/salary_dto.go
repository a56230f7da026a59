package dto

import "github.com/shopspring/decimal"

type NurseDailySalaryResponse struct {
	NurseID        int             `json:"nurse_id"`
	NurseName      string          `json:"nurse_name,omitempty"`
	Date           string          `json:"date"`
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
	Salary         decimal.Decimal `json:"salary"`
}

type NurseDailySalaryListResponse struct {
	Salaries []NurseDailySalaryResponse `json:"salaries"`
	Total    int                        `json:"total"`
}

type NurseIncomeResponse struct {
	NurseID      int             `json:"nurse_id"`
	DailyTotal   decimal.Decimal `json:"daily_total"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

type DoctorIncomeResponse struct {
	DoctorID     int             `json:"doctor_id"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}
