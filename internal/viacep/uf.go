package viacep

// infoUF carrega o nome completo do estado e a região correspondente.
type infoUF struct {
	Estado string
	Regiao string
}

// ufMapeamento cobre as 26 unidades federativas mais o Distrito Federal.
var ufMapeamento = map[string]infoUF{
	"AC": {"Acre", "Norte"},
	"AL": {"Alagoas", "Nordeste"},
	"AP": {"Amapá", "Norte"},
	"AM": {"Amazonas", "Norte"},
	"BA": {"Bahia", "Nordeste"},
	"CE": {"Ceará", "Nordeste"},
	"DF": {"Distrito Federal", "Centro-Oeste"},
	"ES": {"Espírito Santo", "Sudeste"},
	"GO": {"Goiás", "Centro-Oeste"},
	"MA": {"Maranhão", "Nordeste"},
	"MT": {"Mato Grosso", "Centro-Oeste"},
	"MS": {"Mato Grosso do Sul", "Centro-Oeste"},
	"MG": {"Minas Gerais", "Sudeste"},
	"PA": {"Pará", "Norte"},
	"PB": {"Paraíba", "Nordeste"},
	"PR": {"Paraná", "Sul"},
	"PE": {"Pernambuco", "Nordeste"},
	"PI": {"Piauí", "Nordeste"},
	"RJ": {"Rio de Janeiro", "Sudeste"},
	"RN": {"Rio Grande do Norte", "Nordeste"},
	"RS": {"Rio Grande do Sul", "Sul"},
	"RO": {"Rondônia", "Norte"},
	"RR": {"Roraima", "Norte"},
	"SC": {"Santa Catarina", "Sul"},
	"SP": {"São Paulo", "Sudeste"},
	"SE": {"Sergipe", "Nordeste"},
	"TO": {"Tocantins", "Norte"},
}
