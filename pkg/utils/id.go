package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 10
)

// GenerateID gera os identificadores de execução de relatórios
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
