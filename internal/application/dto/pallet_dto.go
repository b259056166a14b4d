package dto

import "time"

// ScanInRequest formulario de POST /upload: escaneo de un palet.
// El frontend de escaneo envía el almacén seleccionado en el campo quantity.
type ScanInRequest struct {
	Code        string `json:"code" form:"code"`
	Barcode     string `json:"barcode" form:"barcode"`
	Timestamp   string `json:"timestamp" form:"timestamp"` // RFC 3339, opcional
	WarehouseID int64  `json:"quantity" form:"quantity"`
}

// PalletByIDRequest operaciones por fila (aceptar / borrar por id).
type PalletByIDRequest struct {
	Code string `json:"code" form:"code"`
	ID   int64  `json:"id" form:"id"`
}

// AcceptOldestRequest aceptación del palet pendiente más antiguo de un almacén y artículo.
type AcceptOldestRequest struct {
	Code        string `json:"code" form:"code"`
	Barcode     string `json:"barcode" form:"barcode"`
	WarehouseID int64  `json:"almacen" form:"almacen"`
}

// QueryByArticleRequest consulta de movimientos por artículo (POST /verificar).
type QueryByArticleRequest struct {
	Barcode     string `json:"barcode" form:"barcode"`
	WarehouseID *int64 `json:"almacen" form:"almacen"` // opcional
}

// BulkInsertRequest alta manual de N palets simulados (admin).
type BulkInsertRequest struct {
	Code        string `json:"code" form:"code"`
	Barcode     string `json:"barcode" form:"barcode"`
	WarehouseID int64  `json:"almacen" form:"almacen"`
	Count       int    `json:"count" form:"count"`
}

// BulkDeleteRequest borrado manual de hasta N palets, los más antiguos primero (admin).
type BulkDeleteRequest struct {
	Code    string `json:"code" form:"code"`
	Barcode string `json:"barcode" form:"barcode"`
	Count   int    `json:"count" form:"count"`
}

// SimulateRequest alta de un único palet simulado ya aceptado.
type SimulateRequest struct {
	Code        string `json:"code" form:"code"`
	Barcode     string `json:"barcode" form:"barcode"`
	WarehouseID int64  `json:"almacen" form:"almacen"`
}

// FilterPalletsRequest consulta filtrada de palets (admin).
type FilterPalletsRequest struct {
	Code        string  `json:"code" form:"code"`
	Barcode     *string `json:"barcode" form:"barcode"`
	WarehouseID *int64  `json:"almacen" form:"almacen"`
	State       *int16  `json:"estado" form:"estado"`
	From        string  `json:"desde" form:"desde"` // RFC 3339, opcional
	To          string  `json:"hasta" form:"hasta"` // RFC 3339, opcional
	Limit       int     `json:"limit" form:"limit"`
	Offset      int     `json:"offset" form:"offset"`
}

// PalletDetailResponse palet con nombres de artículo y centro resueltos.
type PalletDetailResponse struct {
	ID            int64      `json:"id"`
	ArticleCode   string     `json:"lectura"`
	ArticleName   string     `json:"lectura_nombre"`
	WarehouseID   int64      `json:"almacen_id"`
	WarehouseName string     `json:"almacen"`
	Timestamp     time.Time  `json:"timestamp"`
	State         int16      `json:"fulfilled"`
	ReceivedAt    *time.Time `json:"timestamp_recepcion"`
	Simulated     bool       `json:"simulado"`
}

// BulkResponse resultado de una operación masiva.
type BulkResponse struct {
	Affected int `json:"affected"`
}
