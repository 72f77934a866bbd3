package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/auth"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
)

type AuthHandler struct {
	identity *identity.Service
	jwt      *auth.JWTService
}

func NewAuthHandler(identitySvc *identity.Service, jwt *auth.JWTService) *AuthHandler {
	return &AuthHandler{identity: identitySvc, jwt: jwt}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	user, err := h.identity.Register(r.Context(), identity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
	})

	if err != nil {
		switch {
		case errors.Is(err, identity.ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "Email already registered"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Registration failed"})
		}
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.Admin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Registration failed"})
		return
	}

	setTokenCookie(w, token)
	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  userToDTO(user),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	user, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Login failed"})
		}
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.Admin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Login failed"})
		return
	}

	setTokenCookie(w, token)
	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  userToDTO(user),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}

func userToDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Gender:       user.Gender,
		ProfileImage: user.ProfileImage,
		Admin:        user.Admin,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
