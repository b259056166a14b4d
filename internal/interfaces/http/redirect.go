package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Redirector construye redirecciones al frontend con un mensaje legible en la
// query string. Las operaciones de formulario responden por este canal; las
// programáticas devuelven JSON.
type Redirector struct {
	base string // base URL del frontend (REDIRECT_URL)
}

// NewRedirector construye el helper con la base configurada.
func NewRedirector(base string) *Redirector {
	return &Redirector{base: base}
}

// WithMessage redirige a base+path con ?message=<msg> (URL-escapado).
func (r *Redirector) WithMessage(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(r.base+path+"?message="+url.QueryEscape(msg), fiber.StatusFound)
}

// InvalidCode redirección estándar cuando el código de verificación no es válido.
func (r *Redirector) InvalidCode(c *fiber.Ctx, path string) error {
	return r.WithMessage(c, path, "Error: Código de verificación inválido o expirado")
}
