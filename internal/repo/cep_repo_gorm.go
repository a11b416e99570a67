package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
)

type CepRepo struct{ db *gorm.DB }

func NewCepRepo(db *gorm.DB) *CepRepo { return &CepRepo{db: db} }

func (r *CepRepo) BuscarPorCEP(cep string) (*domain.CepConsulta, error) {
	var c domain.CepConsulta
	err := r.db.First(&c, "cep = ?", cep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Criar sempre insere uma linha nova: o histórico de consultas é
// apenas-inserção, mesmo quando o CEP já existe no banco.
func (r *CepRepo) Criar(c *domain.CepConsulta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
}

// Listar devolve as consultas na ordem de inserção.
func (r *CepRepo) Listar() ([]domain.CepConsulta, error) {
	var consultas []domain.CepConsulta
	if err := r.db.Order("id asc").Find(&consultas).Error; err != nil {
		return nil, err
	}
	return consultas, nil
}

func (r *CepRepo) AtualizarComplemento(id uint, complemento string) (*domain.CepConsulta, error) {
	var c domain.CepConsulta
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNaoEncontrado
			}
			return err
		}
		return tx.Model(&c).Update("complemento", complemento).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CepRepo) Excluir(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.CepConsulta{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}
