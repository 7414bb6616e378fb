// Package dto contains request and response shapes for the auth HTTP surface.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/vidfetch/internal/validation"
)

// LoginRequest contains the credentials presented for token issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}
