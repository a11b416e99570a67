package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/service"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/response"
)

type CepHandler struct {
	svc *service.CepService
	log *zap.Logger
}

func NewCepHandler(svc *service.CepService, log *zap.Logger) *CepHandler {
	return &CepHandler{svc: svc, log: log}
}

// Buscar consulta um CEP sem persistir. O banco é consultado antes do
// serviço externo.
func (h *CepHandler) Buscar(c *gin.Context) {
	endereco, err := h.svc.Buscar(c.Request.Context(), c.Param("cep"))
	if err != nil {
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusOK, endereco)
}

// Persistir consulta o serviço externo e grava sempre um registro novo.
func (h *CepHandler) Persistir(c *gin.Context) {
	consulta, err := h.svc.Persistir(c.Request.Context(), c.Param("cep"))
	if err != nil {
		if !domainErr(err) {
			h.log.Error("erro ao salvar consulta", zap.Error(err))
		}
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusCreated, consulta)
}

func (h *CepHandler) Listar(c *gin.Context) {
	consultas, err := h.svc.Listar()
	if err != nil {
		h.log.Error("erro ao listar consultas", zap.Error(err))
		response.DoDominio(c, err)
		return
	}
	if consultas == nil {
		consultas = []domain.CepConsulta{}
	}
	c.JSON(http.StatusOK, consultas)
}

func (h *CepHandler) AtualizarComplemento(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Erro(c, http.StatusNotFound, "consulta não encontrada")
		return
	}
	consulta, err := h.svc.AtualizarComplemento(id, c.Param("complemento"))
	if err != nil {
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusOK, consulta)
}

func (h *CepHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Erro(c, http.StatusNotFound, "consulta não encontrada")
		return
	}
	if err := h.svc.Excluir(id); err != nil {
		response.DoDominio(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID falha para qualquer coisa que não seja um inteiro positivo; a rota
// com id não numérico se comporta como recurso inexistente.
func parseID(s string) (uint, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
