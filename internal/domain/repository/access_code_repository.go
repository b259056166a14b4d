package repository

import (
	"time"

	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// AccessCodeRepository define el puerto de persistencia para los códigos de acceso (DIP).
// El parámetro tier selecciona la tabla (codigo / codigoadmin); el algoritmo es el mismo.
type AccessCodeRepository interface {
	// GetByCode busca el código por igualdad entera; si hay histórico con el mismo
	// valor devuelve el de expiración más reciente. nil si no existe.
	GetByCode(tier entity.Tier, code int32) (*entity.AccessCode, error)
	// GetActive devuelve el código vigente (expiración futura) del nivel, o nil.
	GetActive(tier entity.Tier) (*entity.AccessCode, error)
	// ExpireActive marca como expirados todos los códigos vigentes del nivel.
	ExpireActive(tier entity.Tier) error
	// Insert da de alta un nuevo código con su expiración.
	Insert(tier entity.Tier, code int32, expiresAt time.Time) error
}
