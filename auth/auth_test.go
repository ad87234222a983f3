package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "CorrectHorse7Battery!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword1!", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"alice42", "ComplexPass123!", "Alice"}, false},
		{"Username too short", RegisterRequest{"al", "ComplexPass123!", ""}, true},
		{"Username not alphanumeric", RegisterRequest{"alice 42", "ComplexPass123!", ""}, true},
		{"Password too short", RegisterRequest{"alice42", "Short1!", ""}, true},
		{"Missing digit", RegisterRequest{"alice42", "NoDigitPassword!", ""}, true},
		{"Missing special char", RegisterRequest{"alice42", "NoSpecialChar123", ""}, true},
		{"Missing uppercase", RegisterRequest{"alice42", "nouppercase123!!", ""}, true},
		{"Password too long (edge case)", RegisterRequest{"alice42", strings.Repeat("a", 73), ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-123", []string{"user"}, time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)

	_, err = ValidateToken("not-a-token")
	req.Error(err)
}

func TestExpiredTokenRejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-123", nil, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
