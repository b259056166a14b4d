package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

var _ repository.PalletRepository = (*PalletRepo)(nil)

// PalletRepo implementación del puerto PalletRepository sobre PostgreSQL (tabla reparto).
// Las transiciones con desempate resuelven la selección y la mutación en una
// sola sentencia con subselect bloqueante (FOR UPDATE SKIP LOCKED), de modo que
// dos peticiones concurrentes nunca avanzan la misma fila.
type PalletRepo struct {
	q Querier
}

// NewPalletRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPalletRepository(q Querier) *PalletRepo {
	return &PalletRepo{q: q}
}

const palletColumns = `id, lectura, timestamp, almacen, fulfilled, timestamp_recepcion, simulado`

// Create persiste un palet nuevo y rellena su ID.
func (r *PalletRepo) Create(pallet *entity.Pallet) error {
	query := `
		INSERT INTO reparto (lectura, timestamp, almacen, fulfilled, simulado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		pallet.ArticleCode, pallet.Timestamp, pallet.WarehouseID, pallet.State, pallet.Simulated,
	).Scan(&pallet.ID)
	if err != nil {
		return fmt.Errorf("insert pallet: %w", err)
	}
	return nil
}

// DeleteByID borra por clave primaria. false si la fila no existía.
func (r *PalletRepo) DeleteByID(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM reparto WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pallet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AcceptByID acepta un palet concreto; la condición fulfilled = 0 es la
// precondición de estado. false si no existe o no estaba pendiente.
func (r *PalletRepo) AcceptByID(id int64) (bool, error) {
	query := `
		UPDATE reparto SET fulfilled = 1, timestamp_recepcion = NOW()
		WHERE id = $1 AND fulfilled = 0`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("accept pallet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AcceptOldest acepta el palet pendiente de id más bajo del almacén y artículo.
// El subselect bloquea la fila elegida; SKIP LOCKED hace que una petición
// concurrente salte a la siguiente candidata en vez de esperar y repetirla.
func (r *PalletRepo) AcceptOldest(warehouseID int64, articleCode string) (*entity.Pallet, error) {
	query := `
		UPDATE reparto SET fulfilled = 1, timestamp_recepcion = NOW()
		WHERE id = (
			SELECT id FROM reparto
			WHERE almacen = $1 AND lectura = $2 AND fulfilled = 0
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + palletColumns
	return r.scanOne(query, warehouseID, articleCode)
}

// ForwardOldestFulfilled reenvía (1→2) el palet aceptado de id más bajo del artículo.
func (r *PalletRepo) ForwardOldestFulfilled(articleCode string) (*entity.Pallet, error) {
	query := `
		UPDATE reparto SET fulfilled = 2
		WHERE id = (
			SELECT id FROM reparto
			WHERE lectura = $1 AND fulfilled = 1
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + palletColumns
	return r.scanOne(query, articleCode)
}

// InsertSimulated inserta count palets simulados ya aceptados en una sola sentencia.
func (r *PalletRepo) InsertSimulated(articleCode string, warehouseID int64, count int) (int, error) {
	query := `
		INSERT INTO reparto (lectura, timestamp, almacen, fulfilled, timestamp_recepcion, simulado)
		SELECT $1, NOW(), $2, 1, NOW(), true
		FROM generate_series(1, $3)`
	cmd, err := r.q.Exec(context.Background(), query, articleCode, warehouseID, count)
	if err != nil {
		return 0, fmt.Errorf("insert simulated pallets: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// DeleteOldest borra hasta count palets del artículo, los de id más bajo primero.
// Si hay menos de count, borra los que haya; el llamador decide si eso es un fallo.
func (r *PalletRepo) DeleteOldest(articleCode string, count int) (int, error) {
	query := `
		DELETE FROM reparto
		WHERE id IN (
			SELECT id FROM reparto
			WHERE lectura = $1
			ORDER BY id
			LIMIT $2
		)`
	cmd, err := r.q.Exec(context.Background(), query, articleCode, count)
	if err != nil {
		return 0, fmt.Errorf("delete oldest pallets: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListByArticle devuelve los palets del artículo con nombres resueltos.
func (r *PalletRepo) ListByArticle(articleCode string, warehouseID *int64) ([]*entity.PalletDetail, error) {
	query := `
		SELECT r.id, r.lectura, a.articulo, r.almacen, c.centro, r.timestamp, r.fulfilled, r.timestamp_recepcion, r.simulado
		FROM reparto r
		JOIN centro c ON r.almacen = c.id
		JOIN articulos a ON r.lectura = a.lectura
		WHERE r.lectura = $1`
	args := []any{articleCode}
	if warehouseID != nil {
		query += " AND r.almacen = $2"
		args = append(args, *warehouseID)
	}
	query += " ORDER BY r.id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pallets by article: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// Filter consulta palets según criterios opcionales (construcción posicional de argumentos).
// Usa LEFT JOIN: un palet con lectura desconocida o centro borrado también aparece.
func (r *PalletRepo) Filter(filter entity.PalletFilter) ([]*entity.PalletDetail, error) {
	query := `
		SELECT r.id, r.lectura, COALESCE(a.articulo, ''), r.almacen, COALESCE(c.centro, ''), r.timestamp, r.fulfilled, r.timestamp_recepcion, r.simulado
		FROM reparto r
		LEFT JOIN centro c ON r.almacen = c.id
		LEFT JOIN articulos a ON r.lectura = a.lectura
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ArticleCode != nil {
		query += fmt.Sprintf(" AND r.lectura = $%d", pos)
		args = append(args, *filter.ArticleCode)
		pos++
	}
	if filter.WarehouseID != nil {
		query += fmt.Sprintf(" AND r.almacen = $%d", pos)
		args = append(args, *filter.WarehouseID)
		pos++
	}
	if filter.State != nil {
		query += fmt.Sprintf(" AND r.fulfilled = $%d", pos)
		args = append(args, *filter.State)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND r.timestamp >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND r.timestamp <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY r.id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter pallets: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (r *PalletRepo) scanOne(query string, args ...any) (*entity.Pallet, error) {
	var p entity.Pallet
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.ArticleCode, &p.Timestamp, &p.WarehouseID, &p.State, &p.ReceivedAt, &p.Simulated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update pallet: %w", err)
	}
	return &p, nil
}

func scanDetails(rows pgx.Rows) ([]*entity.PalletDetail, error) {
	var list []*entity.PalletDetail
	for rows.Next() {
		var d entity.PalletDetail
		if err := rows.Scan(&d.ID, &d.ArticleCode, &d.ArticleName, &d.WarehouseID, &d.WarehouseName,
			&d.Timestamp, &d.State, &d.ReceivedAt, &d.Simulated); err != nil {
			return nil, fmt.Errorf("scan pallet: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
