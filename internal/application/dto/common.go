package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta compacta de las operaciones por fila del frontend
// de escaneo: message=1 éxito, message=0 código de verificación rechazado.
type StatusResponse struct {
	Message int `json:"message"`
}
