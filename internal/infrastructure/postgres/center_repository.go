package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

var _ repository.CenterRepository = (*CenterRepo)(nil)

// CenterRepo implementación del puerto CenterRepository sobre PostgreSQL (tabla centro).
type CenterRepo struct {
	q Querier
}

// NewCenterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCenterRepository(q Querier) *CenterRepo {
	return &CenterRepo{q: q}
}

// Create persiste un centro nuevo.
func (r *CenterRepo) Create(center *entity.Center) error {
	query := `
		INSERT INTO centro (centro, principal)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, center.Name, center.IsMain).Scan(&center.ID)
	if err != nil {
		return fmt.Errorf("insert center: %w", err)
	}
	return nil
}

// GetByID obtiene un centro por ID.
func (r *CenterRepo) GetByID(id int64) (*entity.Center, error) {
	query := `SELECT id, centro, principal FROM centro WHERE id = $1`
	var c entity.Center
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.IsMain)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get center: %w", err)
	}
	return &c, nil
}

// List devuelve todos los centros.
func (r *CenterRepo) List() ([]*entity.Center, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, centro, principal FROM centro ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Center
	for rows.Next() {
		var c entity.Center
		if err := rows.Scan(&c.ID, &c.Name, &c.IsMain); err != nil {
			return nil, fmt.Errorf("scan center: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un centro por ID.
func (r *CenterRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM centro WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete center: %w", err)
	}
	return nil
}
