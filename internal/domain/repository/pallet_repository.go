package repository

import "github.com/reparto-app/reparto-api/internal/domain/entity"

// PalletRepository define el puerto de persistencia para los palets (tabla reparto).
// Las transiciones de estado se resuelven en una sola sentencia para que el
// desempate "el más antiguo primero" (id más bajo) lo garantice el propio motor.
type PalletRepository interface {
	Create(pallet *entity.Pallet) error
	// DeleteByID borra por clave primaria sin precondición de estado.
	// Devuelve false si no existía la fila.
	DeleteByID(id int64) (bool, error)
	// AcceptByID pasa un palet concreto de pendiente a aceptado (0→1) sellando
	// la recepción. Devuelve false si la fila no existe o no estaba pendiente.
	AcceptByID(id int64) (bool, error)
	// AcceptOldest selecciona el palet pendiente más antiguo (id más bajo) del
	// almacén y artículo dados y lo acepta. nil si no hay ninguno pendiente.
	AcceptOldest(warehouseID int64, articleCode string) (*entity.Pallet, error)
	// ForwardOldestFulfilled selecciona el palet aceptado más antiguo del
	// artículo y lo marca como reenviado (1→2). nil si no hay ninguno aceptado.
	ForwardOldestFulfilled(articleCode string) (*entity.Pallet, error)
	// InsertSimulated inserta count palets simulados directamente en estado
	// aceptado, cada uno sellado en el momento de la inserción.
	InsertSimulated(articleCode string, warehouseID int64, count int) (int, error)
	// DeleteOldest borra hasta count palets del artículo, siempre los de id más
	// bajo primero. Devuelve cuántos borró realmente (puede ser menor que count).
	DeleteOldest(articleCode string, count int) (int, error)
	// ListByArticle devuelve los palets del artículo con nombres resueltos;
	// warehouseID opcional restringe al almacén.
	ListByArticle(articleCode string, warehouseID *int64) ([]*entity.PalletDetail, error)
	// Filter consulta palets según los criterios opcionales del filtro.
	Filter(filter entity.PalletFilter) ([]*entity.PalletDetail, error)
}
