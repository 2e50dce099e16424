package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer tok", want: "tok"},
		{name: "surrounding spaces", header: "  Bearer tok  ", want: "tok"},
		{name: "no scheme", header: "tok", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcg==", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoExp(t *testing.T) {
	_, ok, err := TokenExpiry(signedToken(t, jwt.RegisteredClaims{Subject: "user-1"}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, _, err := TokenExpiry("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestIsTokenExpired(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	expired, err := IsTokenExpired(token, exp.Add(-time.Minute))
	require.NoError(t, err)
	assert.False(t, expired)

	expired, err = IsTokenExpired(token, exp)
	require.NoError(t, err)
	assert.True(t, expired)

	expired, err = IsTokenExpired(signedToken(t, jwt.RegisteredClaims{}), exp)
	require.NoError(t, err)
	assert.False(t, expired)
}
