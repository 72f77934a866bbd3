package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
)

type UserHandler struct {
	identity *identity.Service
}

func NewUserHandler(identitySvc *identity.Service) *UserHandler {
	return &UserHandler{identity: identitySvc}
}

// List handles GET /api/v1/admin/users. The acting admin is excluded so the
// role-toggle screen cannot demote its own caller.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())

	users, err := h.identity.ListUsers(r.Context(), actorID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list users"})
		return
	}

	response := make([]dto.UserDTO, len(users))
	for i := range users {
		response[i] = userToDTO(&users[i])
	}
	writeJSON(w, http.StatusOK, response)
}

// UpdateRole handles PUT /api/v1/admin/users/{id}/role
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var req dto.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.identity.SetAdmin(r.Context(), userID, req.Admin); err != nil {
		switch {
		case errors.Is(err, identity.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update role"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "User role updated"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
