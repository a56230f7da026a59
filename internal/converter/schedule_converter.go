package converter

import (
	"vetclinic-backoffice/internal/delivery/dto"
	"vetclinic-backoffice/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:              schedule.ID,
		MedicalCardID:   schedule.MedicalCardID,
		CreatedByID:     schedule.CreatedByID,
		AssignedNurseID: schedule.AssignedNurseID,
		StartDate:       schedule.StartDate.Format(dateLayout),
		EndDate:         schedule.EndDate.Format(dateLayout),
		Notes:           schedule.Notes,
		CreatedAt:       schedule.CreatedAt,
	}
	if schedule.CreatedBy.ID != 0 {
		resp.CreatedByName = schedule.CreatedBy.User.FullName()
	}
	if schedule.AssignedNurse.ID != 0 {
		resp.NurseName = schedule.AssignedNurse.User.FullName()
	}
	return resp
}

func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *ScheduleToResponse(&schedules[i]))
	}
	return responses
}

func TaskToResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          task.ID,
		ScheduleID:  task.ScheduleID,
		NurseID:     task.NurseID,
		Description: task.Description,
		Day:         task.Day.Format(dateLayout),
		DueTime:     task.DueTime,
		Price:       task.Price,
		IsDone:      task.IsDone,
		DoneAt:      task.DoneAt,
	}
}

func TasksToResponses(tasks []entity.Task) []dto.TaskResponse {
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *TaskToResponse(&tasks[i]))
	}
	return responses
}

func DoctorTaskToResponse(task *entity.DoctorTask) *dto.DoctorTaskResponse {
	resp := &dto.DoctorTaskResponse{
		ID:            task.ID,
		MedicalCardID: task.MedicalCardID,
		DoctorID:      task.DoctorID,
		ServiceID:     task.ServiceID,
		Description:   task.Description,
		Price:         task.Price,
		IsDone:        task.IsDone,
		DoneAt:        task.DoneAt,
	}
	if task.Service.ID != 0 {
		resp.ServiceName = task.Service.Name
	}
	return resp
}

func DoctorTasksToResponses(tasks []entity.DoctorTask) []dto.DoctorTaskResponse {
	responses := make([]dto.DoctorTaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *DoctorTaskToResponse(&tasks[i]))
	}
	return responses
}
