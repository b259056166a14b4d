package repository

import "github.com/reparto-app/reparto-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	// Create inserta el artículo; devuelve domain.ErrDuplicate si la lectura ya existe
	// (constraint único en el motor, sin lectura previa de existencia).
	Create(article *entity.Article) error
	GetByCode(code string) (*entity.Article, error)
	List() ([]*entity.Article, error)
	Delete(id int64) error
}
