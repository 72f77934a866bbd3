package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/pkg/uploads"
)

const maxProfileImageBytes = 5 << 20 // 5 MiB

type ProfileHandler struct {
	identity *identity.Service
	uploads  *uploads.Store
}

func NewProfileHandler(identitySvc *identity.Service, store *uploads.Store) *ProfileHandler {
	return &ProfileHandler{identity: identitySvc, uploads: store}
}

// Me handles GET /api/v1/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.identity.GetUserByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}

	writeJSON(w, http.StatusOK, userToDTO(user))
}

// Update handles PUT /api/v1/me
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	user, err := h.identity.UpdateProfile(r.Context(), userID, identity.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
	})

	if err != nil {
		switch {
		case errors.Is(err, identity.ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "Email already in use"})
		case errors.Is(err, identity.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Profile update failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, userToDTO(user))
}

// UploadImage handles POST /api/v1/me/image. The image lands on disk via the
// uploads store; only the resulting filename is persisted.
func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("profile_image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Missing profile_image file"})
		return
	}
	defer file.Close()

	filename, err := h.uploads.Save(userID, header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to store image"})
		return
	}

	if err := h.identity.SetProfileImage(r.Context(), userID, filename); err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update profile"})
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: filename})
}
