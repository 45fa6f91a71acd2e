package http

import (
	"net/http"

	"medical-records-api/internal/delivery/http/handler"
	"medical-records-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userAdminHandler    *handler.UserAdminHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	caseHandler         *handler.CaseHandler
	prescriptionHandler *handler.PrescriptionHandler
	appointmentHandler  *handler.AppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userAdminHandler *handler.UserAdminHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	caseHandler *handler.CaseHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userAdminHandler:    userAdminHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		caseHandler:         caseHandler,
		prescriptionHandler: prescriptionHandler,
		appointmentHandler:  appointmentHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Record routes (protected; per-object rules apply in the usecases)
	records := api.PathPrefix("").Subrouter()
	records.Use(r.authMiddleware.Authenticate)

	records.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	records.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	records.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	records.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut, http.MethodPatch)
	records.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	records.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	records.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	records.HandleFunc("/cases", r.caseHandler.GetAllCases).Methods(http.MethodGet)
	records.HandleFunc("/cases", r.caseHandler.CreateCase).Methods(http.MethodPost)
	records.HandleFunc("/cases/{id}", r.caseHandler.GetCase).Methods(http.MethodGet)
	records.HandleFunc("/cases/{id}", r.caseHandler.UpdateCase).Methods(http.MethodPut, http.MethodPatch)
	records.HandleFunc("/cases/{id}", r.caseHandler.DeleteCase).Methods(http.MethodDelete)
	records.HandleFunc("/cases/{id}/attachments", r.caseHandler.UploadAttachment).Methods(http.MethodPost)

	records.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	records.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	records.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	records.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut, http.MethodPatch)
	records.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)
	records.HandleFunc("/prescriptions/{id}/attachments", r.prescriptionHandler.UploadAttachment).Methods(http.MethodPost)

	records.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	records.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	records.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	records.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut, http.MethodPatch)
	records.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Staff management (admin)
	admin.HandleFunc("/users", r.userAdminHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userAdminHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userAdminHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userAdminHandler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/users/{id}", r.userAdminHandler.DeleteUser).Methods(http.MethodDelete)

	// Patient management (admin). Same handlers; the admin role is
	// unrestricted by the visibility scopes.
	admin.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
