package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
)

type PreUserHandler struct {
	identity *identity.Service
}

func NewPreUserHandler(identitySvc *identity.Service) *PreUserHandler {
	return &PreUserHandler{identity: identitySvc}
}

// List handles GET /api/v1/admin/preusers
func (h *PreUserHandler) List(w http.ResponseWriter, r *http.Request) {
	preUsers, err := h.identity.ListPreUsers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list pre-users"})
		return
	}

	response := make([]dto.PreUserDTO, len(preUsers))
	for i := range preUsers {
		response[i] = preUserToDTO(&preUsers[i])
	}
	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /api/v1/admin/preusers
func (h *PreUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePreUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	preUser, err := h.identity.CreatePreUser(r.Context(), identity.CreatePreUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Gender: req.Gender,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create pre-user"})
		return
	}

	writeJSON(w, http.StatusCreated, preUserToDTO(preUser))
}

// MergeHandler serves the identity-linking admin screens.
type MergeHandler struct {
	identity *identity.Service
}

func NewMergeHandler(identitySvc *identity.Service) *MergeHandler {
	return &MergeHandler{identity: identitySvc}
}

// Candidates handles GET /api/v1/admin/merge/candidates
func (h *MergeHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	preUsers, err := h.identity.ListUnlinkedPreUsers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list merge candidates"})
		return
	}

	users, err := h.identity.ListUnlinkedUsers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list merge candidates"})
		return
	}

	resp := dto.MergeCandidatesResponse{
		PreUsers: make([]dto.PreUserDTO, len(preUsers)),
		Users:    make([]dto.UserDTO, len(users)),
	}
	for i := range preUsers {
		resp.PreUsers[i] = preUserToDTO(&preUsers[i])
	}
	for i := range users {
		resp.Users[i] = userToDTO(&users[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Merge handles POST /api/v1/admin/merge
func (h *MergeHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req dto.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	err := h.identity.Merge(r.Context(), req.PreUserID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrPreUserNotFound), errors.Is(err, identity.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "PreUser or user not found"})
		case errors.Is(err, identity.ErrAlreadyLinked):
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "Identity already linked"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Merge failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Identities linked"})
}

func preUserToDTO(preUser *models.PreUser) dto.PreUserDTO {
	return dto.PreUserDTO{
		ID:     preUser.ID,
		UserID: preUser.UserID,
		Name:   preUser.Name,
		Email:  preUser.Email,
		Phone:  preUser.Phone,
		Gender: preUser.Gender,
	}
}
