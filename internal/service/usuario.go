package service

import (
	"context"
	"fmt"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/viacep"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/pkg/utils"
)

// CriarUsuarioInput carrega os campos do cadastro. Todos são obrigatórios,
// exceto Complemento.
type CriarUsuarioInput struct {
	NomeCompleto string `json:"nome_completo"`
	Email        string `json:"email"`
	Senha        string `json:"senha"`
	CPF          string `json:"cpf"`
	CEP          string `json:"cep"`
	Complemento  string `json:"complemento"`
}

// AtualizarUsuarioInput usa ponteiros para distinguir campo ausente de campo
// enviado vazio: nil significa "não alterar". Complemento enviado como string
// vazia limpa o valor atual.
type AtualizarUsuarioInput struct {
	NomeCompleto *string `json:"nome_completo"`
	Email        *string `json:"email"`
	Senha        *string `json:"senha"`
	CEP          *string `json:"cep"`
	Complemento  *string `json:"complemento"`
}

// UsuarioService valida os dados do usuário e mantém os campos de endereço
// sincronizados com a consulta de CEP mais recente.
type UsuarioService struct {
	repo   domain.UsuarioRepository
	client viacep.Client
}

func NewUsuarioService(repo domain.UsuarioRepository, client viacep.Client) *UsuarioService {
	return &UsuarioService{repo: repo, client: client}
}

func (s *UsuarioService) Listar() ([]domain.Usuario, error) {
	return s.repo.Listar()
}

func (s *UsuarioService) BuscarPorID(id uint) (*domain.Usuario, error) {
	return s.repo.BuscarPorID(id)
}

func (s *UsuarioService) Criar(ctx context.Context, in CriarUsuarioInput) (*domain.Usuario, error) {
	obrigatorios := []struct{ nome, valor string }{
		{"nome_completo", in.NomeCompleto},
		{"email", in.Email},
		{"senha", in.Senha},
		{"cpf", in.CPF},
		{"cep", in.CEP},
	}
	for _, campo := range obrigatorios {
		if campo.valor == "" {
			return nil, fmt.Errorf("%w: campo obrigatório ausente: %s", domain.ErrDadosInvalidos, campo.nome)
		}
	}

	if !utils.ValidarEmail(in.Email) {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrDadosInvalidos)
	}
	if !utils.ValidarCPF(in.CPF) {
		return nil, fmt.Errorf("%w: cpf inválido", domain.ErrDadosInvalidos)
	}

	cepLimpo, ok := utils.FormatarCEP(in.CEP)
	if !ok {
		return nil, domain.ErrCEPInvalido
	}
	endereco, err := s.client.Consultar(ctx, cepLimpo)
	if err != nil {
		return nil, err
	}

	senhaHash, err := utils.HashSenha(in.Senha)
	if err != nil {
		return nil, err
	}

	usuario := &domain.Usuario{
		NomeCompleto: in.NomeCompleto,
		Email:        in.Email,
		SenhaHash:    senhaHash,
		CPF:          in.CPF,
		CEP:          cepLimpo,
		Logradouro:   endereco.Logradouro,
		Complemento:  in.Complemento,
		Bairro:       endereco.Bairro,
		Localidade:   endereco.Localidade,
		Estado:       endereco.Estado,
	}
	if err := s.repo.Criar(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Atualizar aplica somente os campos presentes na requisição. CEP novo força
// nova consulta e sobrescreve os campos de endereço derivados (ressincronização,
// nunca edição independente).
func (s *UsuarioService) Atualizar(ctx context.Context, id uint, in AtualizarUsuarioInput) (*domain.Usuario, error) {
	usuario, err := s.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if in.NomeCompleto != nil && *in.NomeCompleto != "" {
		usuario.NomeCompleto = *in.NomeCompleto
	}
	if in.Email != nil && *in.Email != "" {
		if !utils.ValidarEmail(*in.Email) {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrDadosInvalidos)
		}
		usuario.Email = *in.Email
	}
	if in.Senha != nil && *in.Senha != "" {
		senhaHash, err := utils.HashSenha(*in.Senha)
		if err != nil {
			return nil, err
		}
		usuario.SenhaHash = senhaHash
	}
	if in.CEP != nil && *in.CEP != "" {
		cepLimpo, ok := utils.FormatarCEP(*in.CEP)
		if !ok {
			return nil, domain.ErrCEPInvalido
		}
		endereco, err := s.client.Consultar(ctx, cepLimpo)
		if err != nil {
			return nil, err
		}
		usuario.CEP = cepLimpo
		usuario.Logradouro = endereco.Logradouro
		usuario.Bairro = endereco.Bairro
		usuario.Localidade = endereco.Localidade
		usuario.Estado = endereco.Estado
	}
	// Complemento aceita string vazia: enviado vazio limpa o campo,
	// omitido preserva o valor anterior.
	if in.Complemento != nil {
		usuario.Complemento = *in.Complemento
	}

	if err := s.repo.Salvar(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *UsuarioService) Excluir(id uint) error {
	return s.repo.Excluir(id)
}
