package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role-specific registration requests. Dates use the YYYY-MM-DD format.

type RegisterDoctorRequest struct {
	PhoneNumber    string          `json:"phone_number" validate:"required,min=7,max=17"`
	Password       string          `json:"password" validate:"required,min=6"`
	FirstName      string          `json:"first_name" validate:"required,min=2"`
	LastName       string          `json:"last_name" validate:"required,min=2"`
	Specialization string          `json:"specialization" validate:"required"`
	WorkStartDate  string          `json:"work_start_date" validate:"required,datetime=2006-01-02"`
	SalaryPerCase  decimal.Decimal `json:"salary_per_case" validate:"required"`
}

type RegisterNurseRequest struct {
	PhoneNumber     string           `json:"phone_number" validate:"required,min=7,max=17"`
	Password        string           `json:"password" validate:"required,min=6"`
	FirstName       string           `json:"first_name" validate:"required,min=2"`
	LastName        string           `json:"last_name" validate:"required,min=2"`
	WorkStartDate   string           `json:"work_start_date" validate:"required,datetime=2006-01-02"`
	RatePerTask     *decimal.Decimal `json:"rate_per_task,omitempty"`
	ExperienceLevel *string          `json:"experience_level,omitempty"`
}

type RegisterModeratorRequest struct {
	PhoneNumber   string          `json:"phone_number" validate:"required,min=7,max=17"`
	Password      string          `json:"password" validate:"required,min=6"`
	FirstName     string          `json:"first_name" validate:"required,min=2"`
	LastName      string          `json:"last_name" validate:"required,min=2"`
	WorkStartDate string          `json:"work_start_date" validate:"required,datetime=2006-01-02"`
	Salary        decimal.Decimal `json:"salary" validate:"required"`
}

type RegisterClientRequest struct {
	PhoneNumber      string  `json:"phone_number" validate:"required,min=7,max=17"`
	Password         string  `json:"password" validate:"required,min=6"`
	FirstName        string  `json:"first_name" validate:"required,min=2"`
	LastName         string  `json:"last_name" validate:"required,min=2"`
	ExtraPhoneNumber *string `json:"extra_phone_number,omitempty"`
	Address          *string `json:"address,omitempty"`
	Language         *string `json:"language,omitempty" validate:"omitempty,max=5"`
	TelegramID       *string `json:"telegram_id,omitempty"`
}

// Responses

type DoctorResponse struct {
	ID             int             `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	FullName       string          `json:"full_name"`
	PhoneNumber    string          `json:"phone_number"`
	Specialization string          `json:"specialization"`
	WorkStartDate  string          `json:"work_start_date"`
	SalaryPerCase  decimal.Decimal `json:"salary_per_case"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	Active         bool            `json:"active"`
}

type NurseResponse struct {
	ID              int             `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	FullName        string          `json:"full_name"`
	PhoneNumber     string          `json:"phone_number"`
	WorkStartDate   string          `json:"work_start_date"`
	RatePerTask     decimal.Decimal `json:"rate_per_task"`
	SalaryPerDay    decimal.Decimal `json:"salary_per_day"`
	TotalSalary     decimal.Decimal `json:"total_salary"`
	ExperienceLevel *string         `json:"experience_level,omitempty"`
	Active          bool            `json:"active"`
}

type ModeratorResponse struct {
	ID            int             `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	FullName      string          `json:"full_name"`
	PhoneNumber   string          `json:"phone_number"`
	WorkStartDate string          `json:"work_start_date"`
	Salary        decimal.Decimal `json:"salary"`
	Active        bool            `json:"active"`
}

type ClientResponse struct {
	ID               int           `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	FullName         string        `json:"full_name"`
	PhoneNumber      string        `json:"phone_number"`
	ExtraPhoneNumber *string       `json:"extra_phone_number,omitempty"`
	Address          *string       `json:"address,omitempty"`
	Language         *string       `json:"language,omitempty"`
	Pets             []PetResponse `json:"pets,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type NurseListResponse struct {
	Nurses []NurseResponse `json:"nurses"`
	Total  int             `json:"total"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
