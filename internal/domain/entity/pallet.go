package entity

import "time"

// Estados de un palet dentro del ciclo de reparto.
// pending -> fulfilled -> forwarded; el borrado es alcanzable desde cualquier estado.
const (
	PalletPending   int16 = 0 // recibido en almacén, pendiente de aceptar
	PalletFulfilled int16 = 1 // aceptado en el almacén
	PalletForwarded int16 = 2 // reenviado desde un almacén principal
)

// Pallet representa un movimiento de palet (tabla reparto): una unidad física
// en tránsito entre el alta por escaneo, la recepción y el reenvío opcional.
type Pallet struct {
	ID          int64
	ArticleCode string // lectura: código de barras del artículo
	Timestamp   time.Time
	WarehouseID int64 // almacen: FK a centro
	State       int16
	ReceivedAt  *time.Time // timestamp_recepcion, nil hasta que se acepta
	Simulated   bool       // alta manual de administración, sin escaneo real
}

// PalletDetail palet con los nombres de artículo y centro resueltos (consultas con JOIN).
type PalletDetail struct {
	Pallet
	ArticleName   string
	WarehouseName string
}

// PalletFilter criterios opcionales para consultas filtradas de palets.
// Los campos nil no restringen.
type PalletFilter struct {
	ArticleCode *string
	WarehouseID *int64
	State       *int16
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}
