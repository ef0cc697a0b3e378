package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// idLength segue o tamanho padrão do nanoid; dois ids concatenados formam
	// a chave de um rank (21+21)
	idLength = 21
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
