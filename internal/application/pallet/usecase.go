package pallet

import (
	"time"

	"github.com/reparto-app/reparto-api/internal/domain"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

// UseCase máquina de estados de palets: alta por escaneo, aceptación con
// desempate "más antiguo primero", reenvío desde almacén principal y
// operaciones manuales de administración.
type UseCase struct {
	pallets repository.PalletRepository
	centers repository.CenterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(pallets repository.PalletRepository, centers repository.CenterRepository) *UseCase {
	return &UseCase{pallets: pallets, centers: centers}
}

// ScanInInput entrada del alta por escaneo.
type ScanInInput struct {
	ArticleCode string
	WarehouseID int64
	Timestamp   time.Time // cero = ahora
}

// ScanInResult indica qué hizo el alta: crear un palet nuevo o reenviar uno aceptado.
type ScanInResult struct {
	Forwarded bool
	Pallet    *entity.Pallet // el creado, o el reenviado
}

// ScanIn procesa un escaneo. En un almacén normal crea un palet pendiente con
// el timestamp presentado (o el actual). En un almacén principal no crea nada:
// reenvía (1→2) el palet aceptado más antiguo del artículo, y si no hay
// ninguno devuelve domain.ErrNotFound sin efectos.
func (uc *UseCase) ScanIn(in ScanInInput) (*ScanInResult, error) {
	if in.ArticleCode == "" {
		return nil, domain.ErrInvalidInput
	}
	center, err := uc.centers.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, domain.ErrNotFound
	}

	if center.IsMain {
		forwarded, err := uc.pallets.ForwardOldestFulfilled(in.ArticleCode)
		if err != nil {
			return nil, err
		}
		if forwarded == nil {
			return nil, domain.ErrNotFound
		}
		return &ScanInResult{Forwarded: true, Pallet: forwarded}, nil
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	p := &entity.Pallet{
		ArticleCode: in.ArticleCode,
		Timestamp:   ts,
		WarehouseID: in.WarehouseID,
		State:       entity.PalletPending,
	}
	if err := uc.pallets.Create(p); err != nil {
		return nil, err
	}
	return &ScanInResult{Pallet: p}, nil
}

// Accept acepta (0→1) el palet pendiente más antiguo del almacén y artículo
// dados, sellando la recepción. domain.ErrNotFound si no hay ninguno pendiente.
func (uc *UseCase) Accept(warehouseID int64, articleCode string) (*entity.Pallet, error) {
	if articleCode == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pallets.AcceptOldest(warehouseID, articleCode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// AcceptByID acepta un palet concreto; exige que esté pendiente.
func (uc *UseCase) AcceptByID(id int64) error {
	ok, err := uc.pallets.AcceptByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByID borra un palet por clave primaria, sin precondición de estado.
func (uc *UseCase) DeleteByID(id int64) error {
	ok, err := uc.pallets.DeleteByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// BulkInsert inserta count palets simulados directamente aceptados (estado 1)
// para el artículo y almacén dados.
func (uc *UseCase) BulkInsert(articleCode string, warehouseID int64, count int) (int, error) {
	if articleCode == "" || count <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.pallets.InsertSimulated(articleCode, warehouseID, count)
}

// BulkDelete borra hasta count palets del artículo, los más antiguos primero.
// Pedir más de los que existen no es un error: borra los que haya.
func (uc *UseCase) BulkDelete(articleCode string, count int) (int, error) {
	if articleCode == "" || count <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.pallets.DeleteOldest(articleCode, count)
}

// Simulate inserta un único palet simulado ya aceptado.
func (uc *UseCase) Simulate(articleCode string, warehouseID int64) error {
	if articleCode == "" {
		return domain.ErrInvalidInput
	}
	_, err := uc.pallets.InsertSimulated(articleCode, warehouseID, 1)
	return err
}

// FindByArticle devuelve los palets del artículo con nombres resueltos,
// opcionalmente restringidos a un almacén.
func (uc *UseCase) FindByArticle(articleCode string, warehouseID *int64) ([]*entity.PalletDetail, error) {
	if articleCode == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.pallets.ListByArticle(articleCode, warehouseID)
}

// Filter consulta palets por artículo, almacén, estado y rango de fechas.
func (uc *UseCase) Filter(filter entity.PalletFilter) ([]*entity.PalletDetail, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.pallets.Filter(filter)
}
