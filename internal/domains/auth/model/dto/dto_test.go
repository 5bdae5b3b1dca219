package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lotus/infras/jwt"
	"lotus/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRegisterRequest_ToStaffModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "plaintext",
		FullName: "New Staff",
	}

	staff := req.ToStaffModel("system", "hashed-password")

	assert.NotEmpty(t, staff.ID)
	assert.Equal(t, req.Email, staff.Email)
	assert.Equal(t, "hashed-password", staff.Password)
	assert.Equal(t, req.FullName, staff.FullName)
	assert.True(t, staff.Active)
	assert.Equal(t, "system", staff.Metadata.CreatedBy)
}
