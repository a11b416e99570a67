package handler

import (
	"errors"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
)

// domainErr diz se o erro é um dos sentinelas esperados do domínio.
// Erros fora dessa lista são falhas de persistência ou internas e merecem log.
func domainErr(err error) bool {
	for _, sentinela := range []error{
		domain.ErrNaoEncontrado,
		domain.ErrConflito,
		domain.ErrCEPInvalido,
		domain.ErrCEPNaoEncontrado,
		domain.ErrConsultaIndisponivel,
		domain.ErrDadosInvalidos,
	} {
		if errors.Is(err, sentinela) {
			return true
		}
	}
	return false
}
