package usecase

import (
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos del catálogo.
type ArticleUseCase struct {
	repo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo}
}

// Create da de alta un artículo. La unicidad de la lectura la garantiza el
// constraint del motor: un duplicado vuelve como domain.ErrDuplicate sin
// segunda fila ni lectura previa de existencia.
func (uc *ArticleUseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	article := &entity.Article{
		Code: in.Barcode,
		Name: in.Name,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByCode busca un artículo por su código de barras.
func (uc *ArticleUseCase) GetByCode(code string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	return toArticleResponse(article), nil
}

// List devuelve el catálogo completo de artículos.
func (uc *ArticleUseCase) List() ([]dto.ArticleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return items, nil
}

// Delete elimina un artículo por ID.
func (uc *ArticleUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:   a.ID,
		Code: a.Code,
		Name: a.Name,
	}
}
