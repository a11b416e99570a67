package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/FernandoMiyazaki/api-secundaria-viacep/internal/domain"
)

type UsuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepo(db *gorm.DB) *UsuarioRepo { return &UsuarioRepo{db: db} }

func (r *UsuarioRepo) Listar() ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	if err := r.db.Order("id asc").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioRepo) BuscarPorID(id uint) (*domain.Usuario, error) {
	var u domain.Usuario
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepo) Criar(u *domain.Usuario) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	if err != nil && isDupKey(err) {
		return domain.ErrConflito
	}
	return err
}

func (r *UsuarioRepo) Salvar(u *domain.Usuario) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(u).Error
	})
	if err != nil && isDupKey(err) {
		return domain.ErrConflito
	}
	return err
}

func (r *UsuarioRepo) Excluir(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Usuario{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}

// isDupKey reconhece violação de unicidade pelas mensagens dos drivers,
// sem depender de gorm.ErrDuplicatedKey (varia entre versões).
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
