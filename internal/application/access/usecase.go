package access

import (
	"context"
	"strconv"
	"time"

	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
	"github.com/reparto-app/reparto-api/pkg/logger"
)

// UseCase verificación y rotación de códigos de acceso de un solo uso.
// Un mismo algoritmo parametrizado por nivel (user/admin); cada nivel tiene su tabla.
type UseCase struct {
	codes    repository.AccessCodeRepository
	txRunner TxRunner
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(codes repository.AccessCodeRepository, txRunner TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{codes: codes, txRunner: txRunner, log: log}
}

// Verify comprueba si el código presentado es válido para el nivel dado.
// Los códigos son enteros de 32 bits: la entrada se parsea y se compara por
// igualdad entera, así "012" o "+12" valen para el código 12. Una entrada
// ausente, no numérica o fuera de rango es inválida sin consultar la BD.
// Cualquier fallo de la consulta resuelve a inválido (cierra en fallo), nunca propaga.
func (uc *UseCase) Verify(tier entity.Tier, presented string) bool {
	code, err := strconv.ParseInt(presented, 10, 32)
	if err != nil {
		return false
	}

	row, err := uc.codes.GetByCode(tier, int32(code))
	if err != nil {
		uc.log.Error().Err(err).Str("tier", string(tier)).Msg("verificación de código: fallo de consulta")
		return false
	}
	return row != nil && row.Valid(time.Now())
}

// CheckExpired variante de consulta de expiración para el frontend: devuelve
// expired=true si el código no existe, está expirado o la entrada no es un
// entero de 32 bits.
// A diferencia de Verify, un fallo de la BD sí se propaga (el handler responde 500).
func (uc *UseCase) CheckExpired(tier entity.Tier, presented string) (bool, error) {
	code, err := strconv.ParseInt(presented, 10, 32)
	if err != nil {
		return true, nil
	}

	row, err := uc.codes.GetByCode(tier, int32(code))
	if err != nil {
		return false, err
	}
	if row == nil {
		return true, nil
	}
	return !row.Valid(time.Now()), nil
}

// Rotate cambia el código del nivel en una sola transacción: expira todos los
// códigos aún vigentes y da de alta el nuevo. Si no se indica expiración, se
// usa la medianoche (00:00:00) del día siguiente calculada en este momento.
func (uc *UseCase) Rotate(ctx context.Context, tier entity.Tier, newCode int32, expiresAt *time.Time) error {
	exp := nextMidnight(time.Now())
	if expiresAt != nil {
		exp = *expiresAt
	}

	return uc.txRunner.Run(ctx, func(codes repository.AccessCodeRepository) error {
		if err := codes.ExpireActive(tier); err != nil {
			return err
		}
		return codes.Insert(tier, newCode, exp)
	})
}

// ActiveCode devuelve el código vigente del nivel, o nil si no hay ninguno.
func (uc *UseCase) ActiveCode(tier entity.Tier) (*entity.AccessCode, error) {
	return uc.codes.GetActive(tier)
}

// nextMidnight medianoche del día natural siguiente a t, en la zona de t.
func nextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
