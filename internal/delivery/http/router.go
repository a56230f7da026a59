package http

import (
	"net/http"

	"vetclinic-backoffice/internal/delivery/http/handler"
	"vetclinic-backoffice/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	staffHandler       *handler.StaffHandler
	petHandler         *handler.PetHandler
	catalogHandler     *handler.CatalogHandler
	medicalCardHandler *handler.MedicalCardHandler
	roomHandler        *handler.RoomHandler
	scheduleHandler    *handler.ScheduleHandler
	taskHandler        *handler.TaskHandler
	paymentHandler     *handler.PaymentHandler
	salaryHandler      *handler.SalaryHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	staffHandler *handler.StaffHandler,
	petHandler *handler.PetHandler,
	catalogHandler *handler.CatalogHandler,
	medicalCardHandler *handler.MedicalCardHandler,
	roomHandler *handler.RoomHandler,
	scheduleHandler *handler.ScheduleHandler,
	taskHandler *handler.TaskHandler,
	paymentHandler *handler.PaymentHandler,
	salaryHandler *handler.SalaryHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		staffHandler:       staffHandler,
		petHandler:         petHandler,
		catalogHandler:     catalogHandler,
		medicalCardHandler: medicalCardHandler,
		roomHandler:        roomHandler,
		scheduleHandler:    scheduleHandler,
		taskHandler:        taskHandler,
		paymentHandler:     paymentHandler,
		salaryHandler:      salaryHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.corsMiddleware.Handle)
	r.router.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints
	authPublic := api.PathPrefix("/auth").Subrouter()
	authPublic.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	authPublic.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated auth endpoints
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin: staff onboarding, room inventory, payroll and audit visibility
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/staff/doctors", r.staffHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/staff/nurses", r.staffHandler.RegisterNurse).Methods(http.MethodPost)
	admin.HandleFunc("/staff/moderators", r.staffHandler.RegisterModerator).Methods(http.MethodPost)
	admin.HandleFunc("/rooms", r.roomHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/salaries", r.salaryHandler.ListAllDailySalaries).Methods(http.MethodGet)
	admin.HandleFunc("/salaries/nurses/{nurseId}", r.salaryHandler.ListNurseDailySalaries).Methods(http.MethodGet)
	admin.HandleFunc("/incomes/nurses/{nurseId}", r.salaryHandler.GetNurseIncome).Methods(http.MethodGet)
	admin.HandleFunc("/incomes/doctors/{doctorId}", r.salaryHandler.GetDoctorIncome).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListRecent).Methods(http.MethodGet)

	// Moderators: front desk work, clients, pets, catalog, payments, room moves
	moderator := api.PathPrefix("").Subrouter()
	moderator.Use(r.authMiddleware.Authenticate)
	moderator.Use(middleware.RequireModeratorOrAdmin)
	moderator.HandleFunc("/clients", r.staffHandler.RegisterClient).Methods(http.MethodPost)
	moderator.HandleFunc("/clients", r.staffHandler.ListClients).Methods(http.MethodGet)
	moderator.HandleFunc("/pets", r.petHandler.Create).Methods(http.MethodPost)
	moderator.HandleFunc("/pets/{id}", r.petHandler.Update).Methods(http.MethodPut)
	moderator.HandleFunc("/pets/{id}", r.petHandler.Delete).Methods(http.MethodDelete)
	moderator.HandleFunc("/services", r.catalogHandler.CreateService).Methods(http.MethodPost)
	moderator.HandleFunc("/services/{id}", r.catalogHandler.UpdateService).Methods(http.MethodPut)
	moderator.HandleFunc("/services/{id}", r.catalogHandler.DeleteService).Methods(http.MethodDelete)
	moderator.HandleFunc("/medicines", r.catalogHandler.CreateMedicine).Methods(http.MethodPost)
	moderator.HandleFunc("/medicines/{id}", r.catalogHandler.UpdateMedicine).Methods(http.MethodPut)
	moderator.HandleFunc("/medicines/{id}", r.catalogHandler.DeleteMedicine).Methods(http.MethodDelete)
	moderator.HandleFunc("/payments", r.paymentHandler.Create).Methods(http.MethodPost)
	moderator.HandleFunc("/payments/{id}", r.paymentHandler.Update).Methods(http.MethodPut)
	moderator.HandleFunc("/rooms/{id}/assign", r.roomHandler.Assign).Methods(http.MethodPost)
	moderator.HandleFunc("/rooms/{id}/release", r.roomHandler.Release).Methods(http.MethodPost)

	// Doctors: medical cards, service selection, treatment schedules
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/medical-cards", r.medicalCardHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/medical-cards/{id}", r.medicalCardHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/medical-cards/{id}/services", r.medicalCardHandler.SelectServices).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)
	doctor.HandleFunc("/doctor-tasks", r.taskHandler.CreateDoctorTask).Methods(http.MethodPost)
	doctor.HandleFunc("/doctor-tasks/{id}", r.taskHandler.UpdateDoctorTask).Methods(http.MethodPut)
	doctor.HandleFunc("/doctor-tasks/{id}", r.taskHandler.DeleteDoctorTask).Methods(http.MethodDelete)

	// Doctors and nurses: nurse task board
	tasks := api.PathPrefix("").Subrouter()
	tasks.Use(r.authMiddleware.Authenticate)
	tasks.Use(middleware.RequireDoctorOrNurse)
	tasks.HandleFunc("/tasks", r.taskHandler.Create).Methods(http.MethodPost)
	tasks.HandleFunc("/tasks/{id}", r.taskHandler.Update).Methods(http.MethodPut)
	tasks.HandleFunc("/tasks/{id}", r.taskHandler.Delete).Methods(http.MethodDelete)

	// All clinic staff: read access
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/staff/doctors", r.staffHandler.ListDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/staff/nurses", r.staffHandler.ListNurses).Methods(http.MethodGet)
	staff.HandleFunc("/pets", r.petHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/pets/{id}", r.petHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	staff.HandleFunc("/medicines", r.catalogHandler.ListMedicines).Methods(http.MethodGet)
	staff.HandleFunc("/rooms", r.roomHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/medical-cards", r.medicalCardHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/medical-cards/{id}", r.medicalCardHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/medical-cards/{cardId}/schedules", r.scheduleHandler.ListByCard).Methods(http.MethodGet)
	staff.HandleFunc("/medical-cards/{cardId}/doctor-tasks", r.taskHandler.ListDoctorTasksByCard).Methods(http.MethodGet)
	staff.HandleFunc("/schedules", r.scheduleHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/schedules/{scheduleId}/tasks", r.taskHandler.ListBySchedule).Methods(http.MethodGet)
	staff.HandleFunc("/tasks/{id}", r.taskHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/payments", r.paymentHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/payments/{id}", r.paymentHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/payment-days", r.paymentHandler.ListPaymentDays).Methods(http.MethodGet)

	return r.router
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
