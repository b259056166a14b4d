package entity

// Article representa un artículo del catálogo (tabla articulos).
// Code (lectura) es único: un código de barras identifica un solo artículo.
type Article struct {
	ID   int64
	Code string // lectura
	Name string // articulo
}
