package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/reparto-app/reparto-api/pkg/logger"
)

// LocalRequestID key del id de correlación en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger middleware de logging estructurado: asigna un id de correlación
// a cada petición y registra método, ruta, estado y latencia al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		ev := log.Info()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el id de correlación de la petición (tras RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
