package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/reparto-app/reparto-api/internal/domain"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (tabla articulos).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un artículo nuevo. El constraint único sobre lectura convierte
// el duplicado en domain.ErrDuplicate en una sola ida a la BD.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articulos (lectura, articulo)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, article.Code, article.Name).Scan(&article.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByCode obtiene un artículo por su código de barras.
func (r *ArticleRepo) GetByCode(code string) (*entity.Article, error) {
	query := `SELECT id, lectura, articulo FROM articulos WHERE lectura = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, code).Scan(&a.ID, &a.Code, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// List devuelve el catálogo completo.
func (r *ArticleRepo) List() ([]*entity.Article, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, lectura, articulo FROM articulos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Code, &a.Name); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ArticleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
