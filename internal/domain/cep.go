package domain

import "time"

// CepConsulta é o registro histórico de uma consulta de CEP persistida.
// O histórico é apenas-inserção: consultas repetidas do mesmo CEP geram
// linhas novas, nunca atualizam as existentes.
type CepConsulta struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CEP         string `gorm:"size:9;not null;index" json:"cep"`
	Logradouro  string `gorm:"size:100" json:"logradouro"`
	Complemento string `gorm:"size:100" json:"complemento"`
	Bairro      string `gorm:"size:50" json:"bairro"`
	Localidade  string `gorm:"size:50" json:"localidade"`
	UF          string `gorm:"size:2" json:"uf"`
	Estado      string `gorm:"size:50" json:"estado"`
	Regiao      string `gorm:"size:50" json:"regiao"`
	IBGE        string `gorm:"size:10" json:"ibge"`
	GIA         string `gorm:"size:10" json:"gia"`
	DDD         string `gorm:"size:2" json:"ddd"`
	SIAFI       string `gorm:"size:10" json:"siafi"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CepConsulta) TableName() string { return "cep_consultas" }

type CepConsultaRepository interface {
	BuscarPorCEP(cep string) (*CepConsulta, error)
	Criar(c *CepConsulta) error
	Listar() ([]CepConsulta, error)
	AtualizarComplemento(id uint, complemento string) (*CepConsulta, error)
	Excluir(id uint) error
}
