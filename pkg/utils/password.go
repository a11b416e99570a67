package utils

import "golang.org/x/crypto/bcrypt"

// HashSenha gera o hash bcrypt da senha; ela nunca é persistida em claro.
func HashSenha(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerificarSenha compara uma senha em claro com o hash armazenado.
func VerificarSenha(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
