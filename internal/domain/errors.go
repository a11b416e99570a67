package domain

import "errors"

// Erros sentinela do domínio. As camadas de transporte traduzem cada um
// para o status HTTP correspondente.
var (
	// ErrNaoEncontrado indica que a entidade pedida não existe.
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrConflito indica violação de unicidade (email ou CPF já cadastrado).
	ErrConflito = errors.New("email ou cpf já cadastrado")

	// ErrCEPInvalido indica que o CEP não tem 8 dígitos após a normalização.
	ErrCEPInvalido = errors.New("cep inválido")

	// ErrCEPNaoEncontrado indica que o serviço externo respondeu com o
	// marcador "erro" para o CEP consultado.
	ErrCEPNaoEncontrado = errors.New("cep não encontrado")

	// ErrConsultaIndisponivel indica falha de transporte ou resposta
	// malformada do serviço externo, distinta de um CEP inexistente.
	ErrConsultaIndisponivel = errors.New("serviço de consulta de cep indisponível")

	// ErrDadosInvalidos indica campo obrigatório ausente ou que falhou na
	// validação (email, CPF).
	ErrDadosInvalidos = errors.New("dados inválidos")
)
