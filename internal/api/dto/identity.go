package dto

import "github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/validation"

type CreatePreUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Gender string `json:"gender,omitempty"`
}

func (r CreatePreUserRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Email != "" && !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is not valid"
	}

	return errors
}

type MergeRequest struct {
	PreUserID uint `json:"pre_user_id"`
	UserID    uint `json:"user_id"`
}

func (r MergeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.PreUserID == 0 {
		errors["pre_user_id"] = "PreUser is required"
	}
	if r.UserID == 0 {
		errors["user_id"] = "User is required"
	}

	return errors
}

// MergeCandidatesResponse lists both sides of the merge form: PreUsers with
// no account and users with no PreUser.
type MergeCandidatesResponse struct {
	PreUsers []PreUserDTO `json:"pre_users"`
	Users    []UserDTO    `json:"users"`
}

type PreUserDTO struct {
	ID     uint   `json:"id"`
	UserID *uint  `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Gender string `json:"gender,omitempty"`
}

type UpdateRoleRequest struct {
	Admin bool `json:"admin"`
}
