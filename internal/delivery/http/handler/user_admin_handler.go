package handler

import (
	"encoding/json"
	"net/http"

	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/usecase"
	"medical-records-api/pkg/response"
	"medical-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UserAdminHandler serves the staff administration endpoints. Routes are
// mounted behind RequireAdmin; the usecase re-checks regardless.
type UserAdminHandler struct {
	userAdminUsecase usecase.UserAdminUsecase
	validator        *validator.CustomValidator
}

func NewUserAdminHandler(userAdminUsecase usecase.UserAdminUsecase, validator *validator.CustomValidator) *UserAdminHandler {
	return &UserAdminHandler{
		userAdminUsecase: userAdminUsecase,
		validator:        validator,
	}
}

func (h *UserAdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userAdminUsecase.ListUsers(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserAdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userAdminUsecase.GetUser(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to retrieve user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserAdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userAdminUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserAdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userAdminUsecase.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserAdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userAdminUsecase.DeleteUser(r.Context(), userID); err != nil {
		writeUsecaseError(w, err, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}
