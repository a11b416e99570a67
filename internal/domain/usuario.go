package domain

import "time"

// Usuario é o perfil de usuário. Os campos de endereço são sempre derivados
// da última consulta de CEP bem-sucedida feita para o usuário; nunca são
// editados de forma independente.
type Usuario struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NomeCompleto string `gorm:"size:100;not null" json:"nome_completo"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	SenhaHash    string `gorm:"size:255;not null" json:"-"`
	CPF          string `gorm:"uniqueIndex;size:14;not null" json:"cpf"`
	CEP          string `gorm:"size:9;not null" json:"cep"`
	Logradouro   string `gorm:"size:100;not null" json:"logradouro"`
	Complemento  string `gorm:"size:100" json:"complemento"`
	Bairro       string `gorm:"size:50;not null" json:"bairro"`
	Localidade   string `gorm:"size:50;not null" json:"localidade"`
	Estado       string `gorm:"size:50;not null" json:"estado"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }

type UsuarioRepository interface {
	Listar() ([]Usuario, error)
	BuscarPorID(id uint) (*Usuario, error)
	Criar(u *Usuario) error
	Salvar(u *Usuario) error
	Excluir(id uint) error
}
