package repository

import "github.com/reparto-app/reparto-api/internal/domain/entity"

// CenterRepository define el puerto de persistencia para Center (DIP).
type CenterRepository interface {
	Create(center *entity.Center) error
	GetByID(id int64) (*entity.Center, error)
	List() ([]*entity.Center, error)
	Delete(id int64) error
}
