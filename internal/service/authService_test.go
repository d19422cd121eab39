package service

import (
	"testing"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService("s3cret", "signing-key", 24*time.Hour, fixedClock)

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, entity.ErrInvalidPassword)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, entity.ErrInvalidPassword)

	token, err := svc.Login("s3cret")
	require.NoError(t, err)
	assert.Equal(t, Authorized, svc.Authorize(token))
}

func TestLoginWithoutConfiguredPassword(t *testing.T) {
	_, err := NewAuthService("", "signing-key", time.Hour, fixedClock).Login("")
	assert.ErrorIs(t, err, entity.ErrInvalidPassword)
}

func TestAuthorize(t *testing.T) {
	now := fixedNow
	clock := func() time.Time { return now }
	svc := NewAuthService("s3cret", "signing-key", 24*time.Hour, clock)

	token, err := svc.Login("s3cret")
	require.NoError(t, err)

	foreign, err := NewAuthService("s3cret", "other-key", 24*time.Hour, clock).Login("s3cret")
	require.NoError(t, err)

	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin-auth": "false",
		"exp":        fixedNow.Add(time.Hour).Unix(),
	}).SignedString([]byte("signing-key"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin-auth": "true",
	}).SignedString([]byte("signing-key"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		at    time.Time
		want  AuthResult
	}{
		{"fresh token", token, fixedNow, Authorized},
		{"just before expiry", token, fixedNow.Add(24*time.Hour - time.Minute), Authorized},
		{"after expiry", token, fixedNow.Add(25 * time.Hour), Expired},
		{"no cookie", "", fixedNow, Missing},
		{"garbage", "not-a-token", fixedNow, Invalid},
		{"signed with another secret", foreign, fixedNow, Invalid},
		{"claim not set", notAdmin, fixedNow, Invalid},
		{"no expiry", noExpiry, fixedNow, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = tt.at
			assert.Equal(t, tt.want, svc.Authorize(tt.token), tt.want.String())
		})
	}
}
