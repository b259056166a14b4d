package access

import (
	"context"

	"github.com/reparto-app/reparto-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de códigos atado a esa tx. Garantiza que la rotación (expirar
// todos los vigentes + insertar el nuevo) sea atómica: ningún lector observa
// dos códigos vigentes a la vez ni una rotación a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(codes repository.AccessCodeRepository) error) error
}
