package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{"Valid", LoginRequest{Username: "admin", Password: "password123"}, false},
		{"MissingUsername", LoginRequest{Password: "password123"}, true},
		{"MissingPassword", LoginRequest{Username: "admin"}, true},
		{"BlankUsername", LoginRequest{Username: "   ", Password: "password123"}, true},
		{"Empty", LoginRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
