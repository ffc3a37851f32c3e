package response_models

import "github.com/google/uuid"

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
