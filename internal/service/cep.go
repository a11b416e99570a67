package service

import (
	"context"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/viacep"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/pkg/utils"
)

// CepService orquestra consultas de CEP entre o banco e o serviço externo.
type CepService struct {
	repo   domain.CepConsultaRepository
	client viacep.Client
}

func NewCepService(repo domain.CepConsultaRepository, client viacep.Client) *CepService {
	return &CepService{repo: repo, client: client}
}

// Buscar resolve um CEP sem persistir nada. Consulta primeiro o banco e só
// chama o serviço externo quando não há registro salvo.
func (s *CepService) Buscar(ctx context.Context, cep string) (*domain.Endereco, error) {
	cepLimpo, ok := utils.FormatarCEP(cep)
	if !ok {
		return nil, domain.ErrCEPInvalido
	}

	existente, err := s.repo.BuscarPorCEP(cepLimpo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return enderecoDeConsulta(existente), nil
	}

	return s.client.Consultar(ctx, cepLimpo)
}

// Persistir consulta o serviço externo e grava uma consulta nova, sempre —
// inclusive quando o CEP já existe no histórico. Linhas duplicadas são o
// comportamento esperado, não um defeito.
func (s *CepService) Persistir(ctx context.Context, cep string) (*domain.CepConsulta, error) {
	cepLimpo, ok := utils.FormatarCEP(cep)
	if !ok {
		return nil, domain.ErrCEPInvalido
	}

	endereco, err := s.client.Consultar(ctx, cepLimpo)
	if err != nil {
		return nil, err
	}

	consulta := &domain.CepConsulta{
		CEP:         cepLimpo,
		Logradouro:  endereco.Logradouro,
		Complemento: endereco.Complemento,
		Bairro:      endereco.Bairro,
		Localidade:  endereco.Localidade,
		UF:          endereco.UF,
		Estado:      endereco.Estado,
		Regiao:      endereco.Regiao,
		IBGE:        endereco.IBGE,
		GIA:         endereco.GIA,
		DDD:         endereco.DDD,
		SIAFI:       endereco.SIAFI,
	}
	if err := s.repo.Criar(consulta); err != nil {
		return nil, err
	}
	return consulta, nil
}

func (s *CepService) Listar() ([]domain.CepConsulta, error) {
	return s.repo.Listar()
}

func (s *CepService) AtualizarComplemento(id uint, complemento string) (*domain.CepConsulta, error) {
	return s.repo.AtualizarComplemento(id, complemento)
}

func (s *CepService) Excluir(id uint) error {
	return s.repo.Excluir(id)
}

func enderecoDeConsulta(c *domain.CepConsulta) *domain.Endereco {
	return &domain.Endereco{
		CEP:         c.CEP,
		Logradouro:  c.Logradouro,
		Complemento: c.Complemento,
		Bairro:      c.Bairro,
		Localidade:  c.Localidade,
		UF:          c.UF,
		Estado:      c.Estado,
		Regiao:      c.Regiao,
		IBGE:        c.IBGE,
		GIA:         c.GIA,
		DDD:         c.DDD,
		SIAFI:       c.SIAFI,
	}
}
