package utils

import "regexp"

var (
	naoDigito = regexp.MustCompile(`\D`)
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// FormatarCEP remove tudo que não for dígito e exige exatamente 8 dígitos.
// Retorna o CEP normalizado e false quando o formato é inválido.
func FormatarCEP(cep string) (string, bool) {
	limpo := naoDigito.ReplaceAllString(cep, "")
	if len(limpo) != 8 {
		return "", false
	}
	return limpo, true
}

// ValidarEmail faz apenas a checagem sintática (sem verificação de DNS/MX).
func ValidarEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidarCPF aplica o algoritmo padrão de dígitos verificadores do CPF.
func ValidarCPF(cpf string) bool {
	cpf = naoDigito.ReplaceAllString(cpf, "")
	if len(cpf) != 11 {
		return false
	}

	// Sequências com todos os dígitos iguais passam no checksum, mas não
	// são CPFs válidos.
	repetido := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			repetido = false
			break
		}
	}
	if repetido {
		return false
	}

	// Primeiro dígito verificador: pesos 10..2 sobre os 9 primeiros dígitos.
	soma := 0
	for i, peso := 0, 10; i < 9; i, peso = i+1, peso-1 {
		soma += int(cpf[i]-'0') * peso
	}
	resto := soma % 11
	digito1 := 0
	if resto >= 2 {
		digito1 = 11 - resto
	}
	if int(cpf[9]-'0') != digito1 {
		return false
	}

	// Segundo dígito verificador: pesos 11..2 sobre os 10 primeiros dígitos.
	soma = 0
	for i, peso := 0, 11; i < 10; i, peso = i+1, peso-1 {
		soma += int(cpf[i]-'0') * peso
	}
	resto = soma % 11
	digito2 := 0
	if resto >= 2 {
		digito2 = 11 - resto
	}
	return int(cpf[10]-'0') == digito2
}
