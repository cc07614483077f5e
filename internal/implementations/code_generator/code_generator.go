package codegenerator

import (
	"crypto/rand"
	"encoding/hex"

	"userapp/internal/core/domain/code"
)

const CODE_BYTE_LEN = 32

// Generator produces 256-bit hex-encoded one-time codes from the OS
// entropy source.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateCode() code.Code {
	b := make([]byte, CODE_BYTE_LEN)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure means the process has no usable entropy
		// source, continuing would issue guessable codes.
		panic(err)
	}
	return code.Code(hex.EncodeToString(b))
}
