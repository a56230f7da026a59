package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateScheduleRequest struct {
	MedicalCardID   int     `json:"medical_card_id" validate:"required"`
	AssignedNurseID int     `json:"assigned_nurse_id" validate:"required"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Notes           *string `json:"notes,omitempty"`
}

type ScheduleResponse struct {
	ID              int       `json:"id"`
	MedicalCardID   int       `json:"medical_card_id"`
	CreatedByID     int       `json:"created_by_id"`
	CreatedByName   string    `json:"created_by_name,omitempty"`
	AssignedNurseID int       `json:"assigned_nurse_id"`
	NurseName       string    `json:"nurse_name,omitempty"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

type CreateTaskRequest struct {
	ScheduleID  int              `json:"schedule_id" validate:"required"`
	NurseID     *int             `json:"nurse_id,omitempty"`
	Description string           `json:"description" validate:"required"`
	Day         string           `json:"day" validate:"required,datetime=2006-01-02"`
	DueTime     string           `json:"due_time" validate:"required,datetime=15:04"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

type UpdateTaskRequest struct {
	Description *string          `json:"description,omitempty"`
	Day         *string          `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueTime     *string          `json:"due_time,omitempty" validate:"omitempty,datetime=15:04"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsDone      *bool            `json:"is_done,omitempty"`
}

type TaskResponse struct {
	ID          int             `json:"id"`
	ScheduleID  int             `json:"schedule_id"`
	NurseID     int             `json:"nurse_id"`
	Description string          `json:"description"`
	Day         string          `json:"day"`
	DueTime     string          `json:"due_time"`
	Price       decimal.Decimal `json:"price"`
	IsDone      bool            `json:"is_done"`
	DoneAt      *time.Time      `json:"done_at,omitempty"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

type CreateDoctorTaskRequest struct {
	MedicalCardID int              `json:"medical_card_id" validate:"required"`
	ServiceID     int              `json:"service_id" validate:"required"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
}

type UpdateDoctorTaskRequest struct {
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsDone      *bool            `json:"is_done,omitempty"`
}

type DoctorTaskResponse struct {
	ID            int             `json:"id"`
	MedicalCardID int             `json:"medical_card_id"`
	DoctorID      int             `json:"doctor_id"`
	ServiceID     int             `json:"service_id"`
	ServiceName   string          `json:"service_name,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	IsDone        bool            `json:"is_done"`
	DoneAt        *time.Time      `json:"done_at,omitempty"`
}

type DoctorTaskListResponse struct {
	Tasks []DoctorTaskResponse `json:"tasks"`
	Total int                  `json:"total"`
}
