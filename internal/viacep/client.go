package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
	"github.com/FernandoMiyazaki/api-secundaria-viacep/pkg/utils"
)

// Client consulta um CEP no serviço externo de endereços. A interface existe
// para permitir dublês nos testes das camadas de cima.
type Client interface {
	Consultar(ctx context.Context, cep string) (*domain.Endereco, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPClient é a implementação real sobre a API do ViaCEP. Não faz cache nem
// retry: falha de transporte vira domain.ErrConsultaIndisponivel e a decisão
// de consultar o banco antes fica com o chamador.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewHTTPClient(o Options, log *zap.Logger) *HTTPClient {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: o.BaseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// respostaViaCEP espelha o corpo retornado pelo serviço. O campo Erro só vem
// preenchido quando o CEP não existe.
type respostaViaCEP struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	GIA         string `json:"gia"`
	DDD         string `json:"ddd"`
	SIAFI       string `json:"siafi"`
	Erro        any    `json:"erro"`
}

func (c *HTTPClient) Consultar(ctx context.Context, cep string) (*domain.Endereco, error) {
	// Normaliza defensivamente; os handlers já devem ter rejeitado CEP malformado.
	cepLimpo, ok := utils.FormatarCEP(cep)
	if !ok {
		return nil, domain.ErrCEPInvalido
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cepLimpo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConsultaIndisponivel, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("erro ao consultar viacep", zap.String("cep", cepLimpo), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrConsultaIndisponivel, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.log.Error("viacep respondeu status inesperado",
			zap.String("cep", cepLimpo), zap.Int("status", res.StatusCode))
		return nil, fmt.Errorf("%w: status %d", domain.ErrConsultaIndisponivel, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConsultaIndisponivel, err)
	}

	var dados respostaViaCEP
	if err := json.Unmarshal(body, &dados); err != nil {
		c.log.Error("erro ao processar resposta do viacep",
			zap.String("cep", cepLimpo), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrConsultaIndisponivel, err)
	}

	// O ViaCEP sinaliza CEP inexistente com o marcador "erro" no corpo.
	if dados.Erro != nil && dados.Erro != false {
		return nil, domain.ErrCEPNaoEncontrado
	}

	end := &domain.Endereco{
		CEP:         dados.CEP,
		Logradouro:  dados.Logradouro,
		Complemento: dados.Complemento,
		Bairro:      dados.Bairro,
		Localidade:  dados.Localidade,
		UF:          dados.UF,
		IBGE:        dados.IBGE,
		GIA:         dados.GIA,
		DDD:         dados.DDD,
		SIAFI:       dados.SIAFI,
	}
	if info, ok := ufMapeamento[dados.UF]; ok {
		end.Estado = info.Estado
		end.Regiao = info.Regiao
	}
	return end, nil
}
