package dto

import "time"

// CodeRequest consulta de expiración de un código (user o admin).
type CodeRequest struct {
	Code string `json:"code" form:"code"`
}

// CodeExpiredResponse resultado de la consulta de expiración.
type CodeExpiredResponse struct {
	Expired bool `json:"expired"`
}

// RotateCodeRequest formulario de cambio de código (admin).
// Expiration vacío = medianoche del día siguiente.
type RotateCodeRequest struct {
	Code       string `json:"code" form:"code"`         // código admin que autoriza
	Password   string `json:"password" form:"password"` // nuevo código de usuario
	Expiration string `json:"expiration" form:"expiration"`
}

// ActiveCodeData código vigente con su expiración.
type ActiveCodeData struct {
	Code       int32     `json:"code"`
	Expiration time.Time `json:"expiration"`
}

// ActiveCodeResponse salida de la consulta del código vigente.
type ActiveCodeResponse struct {
	Data *ActiveCodeData `json:"data,omitempty"`
	// Message se rellena cuando no hay código vigente.
	Message string `json:"message,omitempty"`
}
