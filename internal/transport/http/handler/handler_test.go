package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memCepRepo e memUsuarioRepo são repositórios em memória para os testes de
// handler, com a mesma semântica dos repositórios gorm.
type memCepRepo struct {
	consultas []domain.CepConsulta
	proxID    uint
	criarErr  error
}

func (f *memCepRepo) BuscarPorCEP(cep string) (*domain.CepConsulta, error) {
	for i := range f.consultas {
		if f.consultas[i].CEP == cep {
			c := f.consultas[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *memCepRepo) Criar(c *domain.CepConsulta) error {
	if f.criarErr != nil {
		return f.criarErr
	}
	f.proxID++
	c.ID = f.proxID
	c.CreatedAt = time.Now()
	f.consultas = append(f.consultas, *c)
	return nil
}

func (f *memCepRepo) Listar() ([]domain.CepConsulta, error) {
	return append([]domain.CepConsulta(nil), f.consultas...), nil
}

func (f *memCepRepo) AtualizarComplemento(id uint, complemento string) (*domain.CepConsulta, error) {
	for i := range f.consultas {
		if f.consultas[i].ID == id {
			f.consultas[i].Complemento = complemento
			c := f.consultas[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNaoEncontrado
}

func (f *memCepRepo) Excluir(id uint) error {
	for i := range f.consultas {
		if f.consultas[i].ID == id {
			f.consultas = append(f.consultas[:i], f.consultas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

type memUsuarioRepo struct {
	usuarios []domain.Usuario
	proxID   uint
}

func (f *memUsuarioRepo) Listar() ([]domain.Usuario, error) {
	return append([]domain.Usuario(nil), f.usuarios...), nil
}

func (f *memUsuarioRepo) BuscarPorID(id uint) (*domain.Usuario, error) {
	for i := range f.usuarios {
		if f.usuarios[i].ID == id {
			u := f.usuarios[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNaoEncontrado
}

func (f *memUsuarioRepo) conflita(u *domain.Usuario) bool {
	for i := range f.usuarios {
		if f.usuarios[i].ID == u.ID {
			continue
		}
		if f.usuarios[i].Email == u.Email || f.usuarios[i].CPF == u.CPF {
			return true
		}
	}
	return false
}

func (f *memUsuarioRepo) Criar(u *domain.Usuario) error {
	if f.conflita(u) {
		return domain.ErrConflito
	}
	f.proxID++
	u.ID = f.proxID
	f.usuarios = append(f.usuarios, *u)
	return nil
}

func (f *memUsuarioRepo) Salvar(u *domain.Usuario) error {
	if f.conflita(u) {
		return domain.ErrConflito
	}
	for i := range f.usuarios {
		if f.usuarios[i].ID == u.ID {
			f.usuarios[i] = *u
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *memUsuarioRepo) Excluir(id uint) error {
	for i := range f.usuarios {
		if f.usuarios[i].ID == id {
			f.usuarios = append(f.usuarios[:i], f.usuarios[i+1:]...)
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

type stubClient struct {
	chamadas int
	resp     *domain.Endereco
	err      error
}

func (f *stubClient) Consultar(ctx context.Context, cep string) (*domain.Endereco, error) {
	f.chamadas++
	if f.err != nil {
		return nil, f.err
	}
	r := *f.resp
	return &r, nil
}

func enderecoPaulista() *domain.Endereco {
	return &domain.Endereco{
		CEP:        "01310-100",
		Logradouro: "Avenida Paulista",
		Bairro:     "Bela Vista",
		Localidade: "São Paulo",
		UF:         "SP",
		Estado:     "São Paulo",
		Regiao:     "Sudeste",
	}
}

// montarRotas sobe um engine mínimo com as mesmas rotas do router real.
func montarRotas(cepRepo domain.CepConsultaRepository, usuRepo domain.UsuarioRepository, cli *stubClient) *gin.Engine {
	log := zap.NewNop()
	cepH := NewCepHandler(service.NewCepService(cepRepo, cli), log)
	usuH := NewUsuarioHandler(service.NewUsuarioService(usuRepo, cli), log)

	r := gin.New()
	cep := r.Group("/cep")
	{
		cep.GET("/", cepH.Listar)
		cep.GET("/:cep", cepH.Buscar)
		cep.POST("/:cep", cepH.Persistir)
		cep.DELETE("/:id", cepH.Excluir)
		cep.PUT("/:id/:complemento", cepH.AtualizarComplemento)
	}
	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("/", usuH.Listar)
		usuarios.POST("/", usuH.Criar)
		usuarios.GET("/:id", usuH.Buscar)
		usuarios.PUT("/:id", usuH.Atualizar)
		usuarios.DELETE("/:id", usuH.Excluir)
	}
	return r
}
