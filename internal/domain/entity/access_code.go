package entity

import "time"

// Tier nivel del código de acceso: usuario normal o administrador.
// Cada nivel tiene su propia tabla de códigos (codigo / codigoadmin).
type Tier string

const (
	TierUser  Tier = "user"
	TierAdmin Tier = "admin"
)

// AccessCode representa un código numérico de un solo uso con fecha de expiración.
// Tras una rotación debe existir como máximo un código vigente por nivel;
// la tabla conserva el histórico de códigos expirados.
type AccessCode struct {
	Code      int32
	ExpiresAt time.Time
}

// Valid indica si el código sigue vigente en el instante dado.
func (c AccessCode) Valid(now time.Time) bool {
	return c.ExpiresAt.After(now)
}
