package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims é o conteúdo do token emitido para o operador do painel
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
