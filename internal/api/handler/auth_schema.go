package handler

import "github.com/hitss/task-manager/internal/core/domain"

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=40"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// signInResponse mirrors the token issuance result: the embedded role
// list is the issuance-time snapshot, informational for the client.
type signInResponse struct {
	Token    string        `json:"token"`
	Type     string        `json:"type"`
	Username string        `json:"username"`
	Roles    []domain.Role `json:"roles"`
}

// messageResponse is the confirmation envelope for sign-up and delete.
type messageResponse struct {
	Message string `json:"message"`
}
