package domain

// Endereco é o resultado de uma consulta de CEP no serviço externo,
// já enriquecido com estado e região. Não tem identidade própria e nunca
// é alterado depois de montado.
type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro,omitempty"`
	Localidade  string `json:"localidade,omitempty"`
	UF          string `json:"uf,omitempty"`
	Estado      string `json:"estado,omitempty"`
	Regiao      string `json:"regiao,omitempty"`
	IBGE        string `json:"ibge,omitempty"`
	GIA         string `json:"gia,omitempty"`
	DDD         string `json:"ddd,omitempty"`
	SIAFI       string `json:"siafi,omitempty"`
}
