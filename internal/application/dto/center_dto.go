package dto

// CreateCenterRequest formulario de alta de centro (admin).
type CreateCenterRequest struct {
	Code   string `json:"code" form:"code"`
	Name   string `json:"name" form:"name"`
	IsMain bool   `json:"principal" form:"principal"`
}

// DeleteCenterRequest borrado de centro (admin). El frontend envía el id en el campo delete.
type DeleteCenterRequest struct {
	Code string `json:"code" form:"code"`
	ID   int64  `json:"delete" form:"delete"`
}

// CenterResponse salida de un centro.
type CenterResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"centro"`
	IsMain bool   `json:"principal"`
}
