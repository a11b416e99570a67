package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
)

// Erro escreve o corpo de erro padrão {"message": ...}. Quando msg é vazio,
// usa a mensagem default do status.
func Erro(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.JSON(status, gin.H{"message": msg})
}

// DoDominio traduz os erros sentinela do domínio para o status HTTP
// correspondente. Qualquer erro não mapeado vira 500 (falha de persistência
// ou interna após entrada válida).
func DoDominio(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCEPInvalido), errors.Is(err, domain.ErrDadosInvalidos):
		Erro(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCEPNaoEncontrado):
		Erro(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNaoEncontrado):
		Erro(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflito):
		Erro(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrConsultaIndisponivel):
		Erro(c, http.StatusBadGateway, err.Error())
	default:
		Erro(c, http.StatusInternalServerError, "erro interno")
	}
}
