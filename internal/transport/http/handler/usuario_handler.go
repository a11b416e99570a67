package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/service"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/transport/http/response"
)

type UsuarioHandler struct {
	svc *service.UsuarioService
	log *zap.Logger
}

func NewUsuarioHandler(svc *service.UsuarioService, log *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{svc: svc, log: log}
}

func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.Listar()
	if err != nil {
		h.log.Error("erro ao listar usuários", zap.Error(err))
		response.DoDominio(c, err)
		return
	}
	if usuarios == nil {
		usuarios = []domain.Usuario{}
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) Buscar(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Erro(c, http.StatusNotFound, "usuário não encontrado")
		return
	}
	usuario, err := h.svc.BuscarPorID(id)
	if err != nil {
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Criar(c *gin.Context) {
	var in service.CriarUsuarioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Erro(c, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	usuario, err := h.svc.Criar(c.Request.Context(), in)
	if err != nil {
		// No cadastro, CEP inexistente é dado inválido do cliente, não 404.
		if errors.Is(err, domain.ErrCEPNaoEncontrado) {
			response.Erro(c, http.StatusBadRequest, "cep inválido ou não encontrado")
			return
		}
		if !domainErr(err) {
			h.log.Error("erro ao criar usuário", zap.Error(err))
		}
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Erro(c, http.StatusNotFound, "usuário não encontrado")
		return
	}

	var in service.AtualizarUsuarioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Erro(c, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	usuario, err := h.svc.Atualizar(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrCEPNaoEncontrado) {
			response.Erro(c, http.StatusBadRequest, "cep inválido ou não encontrado")
			return
		}
		if !domainErr(err) {
			h.log.Error("erro ao atualizar usuário", zap.Error(err))
		}
		response.DoDominio(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Erro(c, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if err := h.svc.Excluir(id); err != nil {
		response.DoDominio(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
