package service

import (
	"context"
	"errors"
	"testing"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
)

// fakeCepRepo guarda as consultas em memória, na ordem de inserção.
type fakeCepRepo struct {
	consultas []domain.CepConsulta
	proxID    uint
	criarErr  error
}

func (f *fakeCepRepo) BuscarPorCEP(cep string) (*domain.CepConsulta, error) {
	for i := range f.consultas {
		if f.consultas[i].CEP == cep {
			c := f.consultas[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCepRepo) Criar(c *domain.CepConsulta) error {
	if f.criarErr != nil {
		return f.criarErr
	}
	f.proxID++
	c.ID = f.proxID
	f.consultas = append(f.consultas, *c)
	return nil
}

func (f *fakeCepRepo) Listar() ([]domain.CepConsulta, error) {
	return append([]domain.CepConsulta(nil), f.consultas...), nil
}

func (f *fakeCepRepo) AtualizarComplemento(id uint, complemento string) (*domain.CepConsulta, error) {
	for i := range f.consultas {
		if f.consultas[i].ID == id {
			f.consultas[i].Complemento = complemento
			c := f.consultas[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNaoEncontrado
}

func (f *fakeCepRepo) Excluir(id uint) error {
	for i := range f.consultas {
		if f.consultas[i].ID == id {
			f.consultas = append(f.consultas[:i], f.consultas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

// fakeClient conta as chamadas externas feitas.
type fakeClient struct {
	chamadas int
	resp     *domain.Endereco
	err      error
}

func (f *fakeClient) Consultar(ctx context.Context, cep string) (*domain.Endereco, error) {
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

func TestBuscar_CEPInvalido(t *testing.T) {
	svc := NewCepService(&fakeCepRepo{}, &fakeClient{resp: enderecoPaulista()})
	if _, err := svc.Buscar(context.Background(), "abc"); !errors.Is(err, domain.ErrCEPInvalido) {
		t.Fatalf("esperado ErrCEPInvalido, veio %v", err)
	}
}

func TestBuscar_ConsultaExternaQuandoNaoHaRegistro(t *testing.T) {
	cli := &fakeClient{resp: enderecoPaulista()}
	svc := NewCepService(&fakeCepRepo{}, cli)

	end, err := svc.Buscar(context.Background(), "01310-100")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cli.chamadas != 1 {
		t.Errorf("esperada 1 chamada externa, houve %d", cli.chamadas)
	}
	if end.Estado != "São Paulo" || end.Regiao != "Sudeste" {
		t.Errorf("endereço sem enriquecimento: %+v", end)
	}
}

func TestBuscar_UsaBancoSemChamadaExterna(t *testing.T) {
	repo := &fakeCepRepo{}
	cli := &fakeClient{resp: enderecoPaulista()}
	svc := NewCepService(repo, cli)

	// Persiste uma vez e depois lê repetidamente.
	if _, err := svc.Persistir(context.Background(), "01310100"); err != nil {
		t.Fatalf("persistir: %v", err)
	}
	externasAposPersistir := cli.chamadas

	for i := 0; i < 3; i++ {
		end, err := svc.Buscar(context.Background(), "01310-100")
		if err != nil {
			t.Fatalf("buscar: %v", err)
		}
		if end.Logradouro != "Avenida Paulista" {
			t.Errorf("endereço divergente: %+v", end)
		}
	}
	if cli.chamadas != externasAposPersistir {
		t.Errorf("leitura com registro salvo não deveria chamar o serviço externo (%d -> %d)",
			externasAposPersistir, cli.chamadas)
	}
}

func TestPersistir_SempreInsereNovaLinha(t *testing.T) {
	repo := &fakeCepRepo{}
	cli := &fakeClient{resp: enderecoPaulista()}
	svc := NewCepService(repo, cli)

	c1, err := svc.Persistir(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("primeira persistência: %v", err)
	}
	c2, err := svc.Persistir(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("segunda persistência: %v", err)
	}

	if c1.ID == c2.ID {
		t.Error("persistências repetidas devem criar registros distintos")
	}
	if cli.chamadas != 2 {
		t.Errorf("persistir deve sempre consultar o serviço externo, houve %d chamadas", cli.chamadas)
	}
	lista, _ := svc.Listar()
	if len(lista) != 2 {
		t.Errorf("esperadas 2 consultas no histórico, vieram %d", len(lista))
	}
	// CEP armazenado só com dígitos, mesmo que o serviço devolva com hífen.
	for _, c := range lista {
		if c.CEP != "01310100" {
			t.Errorf("cep armazenado com pontuação: %q", c.CEP)
		}
	}
}

func TestPersistir_PropagaNaoEncontrado(t *testing.T) {
	svc := NewCepService(&fakeCepRepo{}, &fakeClient{err: domain.ErrCEPNaoEncontrado})
	if _, err := svc.Persistir(context.Background(), "99999999"); !errors.Is(err, domain.ErrCEPNaoEncontrado) {
		t.Fatalf("esperado ErrCEPNaoEncontrado, veio %v", err)
	}
}

func TestPersistir_FalhaDePersistencia(t *testing.T) {
	repo := &fakeCepRepo{criarErr: errors.New("disk on fire")}
	svc := NewCepService(repo, &fakeClient{resp: enderecoPaulista()})
	if _, err := svc.Persistir(context.Background(), "01310100"); err == nil {
		t.Fatal("esperado erro de persistência")
	}
	if len(repo.consultas) != 0 {
		t.Error("nenhum registro deveria sobrar após falha")
	}
}

func TestAtualizarComplemento(t *testing.T) {
	repo := &fakeCepRepo{}
	svc := NewCepService(repo, &fakeClient{resp: enderecoPaulista()})

	c, _ := svc.Persistir(context.Background(), "01310100")
	atualizado, err := svc.AtualizarComplemento(c.ID, "lado ímpar")
	if err != nil {
		t.Fatalf("atualizar: %v", err)
	}
	if atualizado.Complemento != "lado ímpar" {
		t.Errorf("complemento = %q", atualizado.Complemento)
	}
	if atualizado.Logradouro != "Avenida Paulista" {
		t.Error("atualização de complemento não pode tocar outros campos")
	}

	if _, err := svc.AtualizarComplemento(999, "x"); !errors.Is(err, domain.ErrNaoEncontrado) {
		t.Fatalf("esperado ErrNaoEncontrado, veio %v", err)
	}
}

func TestExcluir(t *testing.T) {
	repo := &fakeCepRepo{}
	svc := NewCepService(repo, &fakeClient{resp: enderecoPaulista()})

	c, _ := svc.Persistir(context.Background(), "01310100")
	if err := svc.Excluir(c.ID); err != nil {
		t.Fatalf("excluir: %v", err)
	}
	if err := svc.Excluir(c.ID); !errors.Is(err, domain.ErrNaoEncontrado) {
		t.Fatalf("esperado ErrNaoEncontrado na segunda exclusão, veio %v", err)
	}
}
