package entity

// Center representa un centro de almacén (tabla centro).
// IsMain marca un almacén principal: reenvía palets ya aceptados en lugar de recibir nuevos.
type Center struct {
	ID     int64
	Name   string
	IsMain bool
}
