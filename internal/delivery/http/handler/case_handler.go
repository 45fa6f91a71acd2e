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

// maxAttachmentSize caps multipart uploads at 32 MiB
const maxAttachmentSize = 32 << 20

type CaseHandler struct {
	caseUsecase usecase.CaseUsecase
	validator   *validator.CustomValidator
}

func NewCaseHandler(caseUsecase usecase.CaseUsecase, validator *validator.CustomValidator) *CaseHandler {
	return &CaseHandler{
		caseUsecase: caseUsecase,
		validator:   validator,
	}
}

// GetAllCases lists the cases visible to the caller
// @Summary List cases
// @Tags Cases
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /cases [get]
func (h *CaseHandler) GetAllCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseUsecase.ListCases(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to list cases")
		return
	}

	response.Success(w, http.StatusOK, "Cases retrieved successfully", cases)
}

func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid case ID", nil)
		return
	}

	medicalCase, err := h.caseUsecase.GetCase(r.Context(), caseID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to retrieve case")
		return
	}

	response.Success(w, http.StatusOK, "Case retrieved successfully", medicalCase)
}

func (h *CaseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicalCase, err := h.caseUsecase.CreateCase(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create case")
		return
	}

	response.Success(w, http.StatusCreated, "Case created successfully", medicalCase)
}

func (h *CaseHandler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid case ID", nil)
		return
	}

	var req dto.UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicalCase, err := h.caseUsecase.UpdateCase(r.Context(), caseID, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update case")
		return
	}

	response.Success(w, http.StatusOK, "Case updated successfully", medicalCase)
}

func (h *CaseHandler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid case ID", nil)
		return
	}

	if err := h.caseUsecase.DeleteCase(r.Context(), caseID); err != nil {
		writeUsecaseError(w, err, "Failed to delete case")
		return
	}

	response.Success(w, http.StatusOK, "Case deleted successfully", nil)
}

// UploadAttachment accepts a multipart form with a "label" field and a
// "file" part and stores the file with the case
// @Summary Attach a file to a case
// @Tags Cases
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Router /cases/{id}/attachments [post]
func (h *CaseHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid case ID", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAttachmentSize)
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	label := r.FormValue("label")
	if label == "" {
		response.Error(w, http.StatusBadRequest, "Label is required", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	attachment, err := h.caseUsecase.AddAttachment(r.Context(), caseID, label, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		writeUsecaseError(w, err, "Failed to upload attachment")
		return
	}

	response.Success(w, http.StatusCreated, "Attachment uploaded successfully", attachment)
}
