package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

var _ repository.AccessCodeRepository = (*AccessCodeRepo)(nil)

// AccessCodeRepo implementación del puerto AccessCodeRepository sobre PostgreSQL.
// El nivel selecciona la tabla: codigo (user) o codigoadmin (admin).
type AccessCodeRepo struct {
	q Querier
}

// NewAccessCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccessCodeRepository(q Querier) *AccessCodeRepo {
	return &AccessCodeRepo{q: q}
}

// codeTable tabla de códigos del nivel. Valores fijos, nunca entrada del cliente.
func codeTable(tier entity.Tier) string {
	if tier == entity.TierAdmin {
		return "codigoadmin"
	}
	return "codigo"
}

// GetByCode busca el código por igualdad entera; con histórico del mismo valor
// gana la fila de expiración más reciente.
func (r *AccessCodeRepo) GetByCode(tier entity.Tier, code int32) (*entity.AccessCode, error) {
	query := fmt.Sprintf(`
		SELECT codigo, expiración FROM %s
		WHERE codigo = $1
		ORDER BY expiración DESC LIMIT 1`, codeTable(tier))
	var c entity.AccessCode
	err := r.q.QueryRow(context.Background(), query, code).Scan(&c.Code, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access code: %w", err)
	}
	return &c, nil
}

// GetActive devuelve el código vigente del nivel, o nil si no hay ninguno.
func (r *AccessCodeRepo) GetActive(tier entity.Tier) (*entity.AccessCode, error) {
	query := fmt.Sprintf(`
		SELECT codigo, expiración FROM %s
		WHERE expiración > NOW()
		ORDER BY expiración DESC LIMIT 1`, codeTable(tier))
	var c entity.AccessCode
	err := r.q.QueryRow(context.Background(), query).Scan(&c.Code, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active code: %w", err)
	}
	return &c, nil
}

// ExpireActive marca como expirados todos los códigos aún vigentes del nivel.
func (r *AccessCodeRepo) ExpireActive(tier entity.Tier) error {
	query := fmt.Sprintf(`UPDATE %s SET expiración = NOW() WHERE expiración > NOW()`, codeTable(tier))
	if _, err := r.q.Exec(context.Background(), query); err != nil {
		return fmt.Errorf("expire active codes: %w", err)
	}
	return nil
}

// Insert da de alta un nuevo código con su expiración.
func (r *AccessCodeRepo) Insert(tier entity.Tier, code int32, expiresAt time.Time) error {
	query := fmt.Sprintf(`INSERT INTO %s (codigo, expiración) VALUES ($1, $2)`, codeTable(tier))
	if _, err := r.q.Exec(context.Background(), query, code, expiresAt); err != nil {
		return fmt.Errorf("insert access code: %w", err)
	}
	return nil
}
