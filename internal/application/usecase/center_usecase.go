package usecase

import (
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

// CenterUseCase casos de uso CRUD para centros de almacén.
type CenterUseCase struct {
	repo repository.CenterRepository
}

// NewCenterUseCase construye el caso de uso.
func NewCenterUseCase(repo repository.CenterRepository) *CenterUseCase {
	return &CenterUseCase{repo: repo}
}

// Create da de alta un centro.
func (uc *CenterUseCase) Create(in dto.CreateCenterRequest) (*dto.CenterResponse, error) {
	center := &entity.Center{
		Name:   in.Name,
		IsMain: in.IsMain,
	}
	if err := uc.repo.Create(center); err != nil {
		return nil, err
	}
	return toCenterResponse(center), nil
}

// List devuelve todos los centros.
func (uc *CenterUseCase) List() ([]dto.CenterResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CenterResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCenterResponse(c))
	}
	return items, nil
}

// Delete elimina un centro por ID.
func (uc *CenterUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toCenterResponse(c *entity.Center) *dto.CenterResponse {
	if c == nil {
		return nil
	}
	return &dto.CenterResponse{
		ID:     c.ID,
		Name:   c.Name,
		IsMain: c.IsMain,
	}
}
