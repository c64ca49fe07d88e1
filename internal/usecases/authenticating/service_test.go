package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	cfg.Auth.AdminUsername = "admin"
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.Auth.AdminPasswordHash = string(hash)
	}

	return NewService(cfg)
}

func TestService_LoginUser(t *testing.T) {
	service := newTestService(t, "s3nh@")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "credenciais válidas", username: "admin", password: "s3nh@"},
		{name: "usuário com espaços", username: " admin ", password: "s3nh@"},
		{name: "senha errada", username: "admin", password: "outra", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "usuário errado", username: "root", password: "s3nh@", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "sem senha", username: "admin", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "sem usuário", username: "", password: "s3nh@", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsCredentialsError(err))

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Username)
			assert.Equal(t, "admin", claims.Subject)
		})
	}
}

func TestService_LoginUser_NotConfigured(t *testing.T) {
	service := newTestService(t, "")

	_, err := service.LoginUser("admin", "qualquer")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t, "s3nh@")
	token, err := service.LoginUser("admin", "s3nh@")
	require.NoError(t, err)

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
		defer func() { service.now = time.Now }()

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		other := NewService(&config.Config{SecretKey: "outra-chave"})

		_, err := other.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo não HMAC", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Username: "admin"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(unsigned)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto qualquer", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3nh@")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3nh@")))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
