package dto

// CreateArticleRequest formulario de alta de artículo (admin).
type CreateArticleRequest struct {
	Code    string `json:"code" form:"code"`
	Barcode string `json:"barcode" form:"barcode"`
	Name    string `json:"article" form:"article"`
}

// ArticleByCodeRequest consulta de un artículo por código de barras.
type ArticleByCodeRequest struct {
	Barcode string `json:"barcode" form:"barcode"`
}

// DeleteArticleRequest borrado de artículo por id (admin).
type DeleteArticleRequest struct {
	Code string `json:"code" form:"code"`
	ID   int64  `json:"id" form:"id"`
}

// ArticleResponse salida de un artículo.
type ArticleResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"lectura"`
	Name string `json:"articulo"`
}
