package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os identificadores de clientes, usuários, mensagens e mídias
func GenerateID() string {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		// só acontece se a fonte de aleatoriedade do sistema falhar
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id
}
