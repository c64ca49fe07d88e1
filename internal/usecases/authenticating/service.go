package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o único operador configurado em ADMIN_USERNAME/ADMIN_PASSWORD_HASH
type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// HashPassword gera o hash bcrypt a ser colocado em ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrMissingRequiredData
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *Service) LoginUser(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if s.cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH não configurado, login recusado")
		return "", NewAuthError(ErrAuthNotConfigured, apiErrors.ErrInvalidCredentials, "Login desabilitado")
	}

	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Auth.AdminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(password))
	if !sameUser || passwordErr != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
