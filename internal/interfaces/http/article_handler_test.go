package http_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// POST /afegir-article
// ──────────────────────────────────────────────────────────────────────────────

func TestArticleCreate_Exito(t *testing.T) {
	env := newTestEnv(t)

	resp := postForm(t, env.app, "/afegir-article", url.Values{
		"code":    {adminCode},
		"barcode": {"8412345678905"},
		"article": {"Caja de tornillos"},
	})
	assert.Equal(t, "Artículo añadido con éxito", redirectMessage(t, resp, "/admin"))
	require.Len(t, env.articles.articles, 1)
	assert.Equal(t, "8412345678905", env.articles.articles[0].Code)
}

// Un código de barras repetido se rechaza y no deja una segunda fila.
func TestArticleCreate_LecturaDuplicada(t *testing.T) {
	env := newTestEnv(t)
	env.articles.articles = append(env.articles.articles, entity.Article{
		ID: 1, Code: "8412345678905", Name: "Caja de tornillos",
	})

	resp := postForm(t, env.app, "/afegir-article", url.Values{
		"code":    {adminCode},
		"barcode": {"8412345678905"},
		"article": {"Otro nombre"},
	})
	assert.Equal(t, "Error: El código de barras ya existe", redirectMessage(t, resp, ""))
	assert.Len(t, env.articles.articles, 1)
}

func TestArticleCreate_CodigoInvalido(t *testing.T) {
	env := newTestEnv(t)

	resp := postForm(t, env.app, "/afegir-article", url.Values{
		"code":    {"0000"},
		"barcode": {"8412345678905"},
		"article": {"Caja de tornillos"},
	})
	assert.Equal(t, "Error: Código de verificación inválido o expirado", redirectMessage(t, resp, "/admin"))
	assert.Empty(t, env.articles.articles)
}

func TestArticleCreate_CamposVacios(t *testing.T) {
	env := newTestEnv(t)

	resp := postForm(t, env.app, "/afegir-article", url.Values{
		"code":    {adminCode},
		"barcode": {"8412345678905"},
	})
	assert.Equal(t, "Error al añadir el artículo", redirectMessage(t, resp, "/admin"))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET y POST /verificar-article
// ──────────────────────────────────────────────────────────────────────────────

func TestArticleGetByCode_DevuelveLista(t *testing.T) {
	env := newTestEnv(t)
	env.articles.articles = append(env.articles.articles, entity.Article{
		ID: 1, Code: "8412345678905", Name: "Caja de tornillos",
	})

	resp := postForm(t, env.app, "/verificar-article", url.Values{"barcode": {"8412345678905"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.ArticleResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Caja de tornillos", out[0].Name)

	// inexistente: lista vacía, no null ni 404
	resp = postForm(t, env.app, "/verificar-article", url.Values{"barcode": {"0000000000000"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.JSONEq(t, "[]", body)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /esborrar-article
// ──────────────────────────────────────────────────────────────────────────────

func TestArticleDelete_Exito(t *testing.T) {
	env := newTestEnv(t)
	env.articles.articles = append(env.articles.articles, entity.Article{
		ID: 1, Code: "8412345678905", Name: "Caja de tornillos",
	})

	resp := postForm(t, env.app, "/esborrar-article", url.Values{
		"code": {adminCode},
		"id":   {"1"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Equal(t, 1, out.Message)
	assert.Empty(t, env.articles.articles)
}

func TestArticleDelete_RechazaCodigoUser(t *testing.T) {
	env := newTestEnv(t)

	resp := postForm(t, env.app, "/esborrar-article", url.Values{
		"code": {userCode},
		"id":   {"1"},
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
