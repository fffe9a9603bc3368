package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest aplica SHA-256 e devolve o resultado em hexadecimal (64 caracteres).
// Determinístico e sem salt: bancos existentes guardam exatamente este formato
// em usuarios.senha_hash, então trocar o algoritmo exige migração dos digests.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
