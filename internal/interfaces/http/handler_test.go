package http_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/pallet"
	"github.com/reparto-app/reparto-api/internal/application/usecase"
	"github.com/reparto-app/reparto-api/internal/domain"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
	"github.com/reparto-app/reparto-api/internal/domain/repository"
	httpRouter "github.com/reparto-app/reparto-api/internal/interfaces/http"
	"github.com/reparto-app/reparto-api/pkg/logger"
)

const frontendURL = "http://front.local"

// Códigos sembrados en todos los tests de handlers.
const (
	userCode  = "1234"
	adminCode = "4321"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con la misma semántica que los adaptadores PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type fakeCodeRepo struct {
	rows map[entity.Tier][]entity.AccessCode
}

func (f *fakeCodeRepo) GetByCode(tier entity.Tier, code int32) (*entity.AccessCode, error) {
	var best *entity.AccessCode
	for i := range f.rows[tier] {
		row := f.rows[tier][i]
		if row.Code != code {
			continue
		}
		if best == nil || row.ExpiresAt.After(best.ExpiresAt) {
			r := row
			best = &r
		}
	}
	return best, nil
}

func (f *fakeCodeRepo) GetActive(tier entity.Tier) (*entity.AccessCode, error) {
	now := time.Now()
	for i := range f.rows[tier] {
		if f.rows[tier][i].ExpiresAt.After(now) {
			r := f.rows[tier][i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeCodeRepo) ExpireActive(tier entity.Tier) error {
	now := time.Now()
	for i := range f.rows[tier] {
		if f.rows[tier][i].ExpiresAt.After(now) {
			f.rows[tier][i].ExpiresAt = now
		}
	}
	return nil
}

func (f *fakeCodeRepo) Insert(tier entity.Tier, code int32, expiresAt time.Time) error {
	f.rows[tier] = append(f.rows[tier], entity.AccessCode{Code: code, ExpiresAt: expiresAt})
	return nil
}

type fakeTxRunner struct {
	repo *fakeCodeRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(codes repository.AccessCodeRepository) error) error {
	return fn(f.repo)
}

type fakePalletRepo struct {
	rows   []entity.Pallet
	nextID int64
}

func (f *fakePalletRepo) Create(p *entity.Pallet) error {
	p.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePalletRepo) DeleteByID(id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePalletRepo) AcceptByID(id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].State == entity.PalletPending {
			now := time.Now()
			f.rows[i].State = entity.PalletFulfilled
			f.rows[i].ReceivedAt = &now
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePalletRepo) AcceptOldest(warehouseID int64, articleCode string) (*entity.Pallet, error) {
	best := -1
	for i := range f.rows {
		r := f.rows[i]
		if r.WarehouseID != warehouseID || r.ArticleCode != articleCode || r.State != entity.PalletPending {
			continue
		}
		if best == -1 || r.ID < f.rows[best].ID {
			best = i
		}
	}
	if best == -1 {
		return nil, nil
	}
	now := time.Now()
	f.rows[best].State = entity.PalletFulfilled
	f.rows[best].ReceivedAt = &now
	p := f.rows[best]
	return &p, nil
}

func (f *fakePalletRepo) ForwardOldestFulfilled(articleCode string) (*entity.Pallet, error) {
	best := -1
	for i := range f.rows {
		r := f.rows[i]
		if r.ArticleCode != articleCode || r.State != entity.PalletFulfilled {
			continue
		}
		if best == -1 || r.ID < f.rows[best].ID {
			best = i
		}
	}
	if best == -1 {
		return nil, nil
	}
	f.rows[best].State = entity.PalletForwarded
	p := f.rows[best]
	return &p, nil
}

func (f *fakePalletRepo) InsertSimulated(articleCode string, warehouseID int64, count int) (int, error) {
	now := time.Now()
	for i := 0; i < count; i++ {
		ts := now
		f.rows = append(f.rows, entity.Pallet{
			ID:          f.nextID,
			ArticleCode: articleCode,
			Timestamp:   now,
			WarehouseID: warehouseID,
			State:       entity.PalletFulfilled,
			ReceivedAt:  &ts,
			Simulated:   true,
		})
		f.nextID++
	}
	return count, nil
}

func (f *fakePalletRepo) DeleteOldest(articleCode string, count int) (int, error) {
	var ids []int64
	for i := range f.rows {
		if f.rows[i].ArticleCode == articleCode {
			ids = append(ids, f.rows[i].ID)
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	if len(ids) > count {
		ids = ids[:count]
	}
	for _, id := range ids {
		f.DeleteByID(id)
	}
	return len(ids), nil
}

func (f *fakePalletRepo) ListByArticle(articleCode string, warehouseID *int64) ([]*entity.PalletDetail, error) {
	var out []*entity.PalletDetail
	for i := range f.rows {
		r := f.rows[i]
		if r.ArticleCode != articleCode {
			continue
		}
		if warehouseID != nil && r.WarehouseID != *warehouseID {
			continue
		}
		out = append(out, &entity.PalletDetail{Pallet: r})
	}
	return out, nil
}

func (f *fakePalletRepo) Filter(filter entity.PalletFilter) ([]*entity.PalletDetail, error) {
	var out []*entity.PalletDetail
	for i := range f.rows {
		r := f.rows[i]
		if filter.ArticleCode != nil && r.ArticleCode != *filter.ArticleCode {
			continue
		}
		if filter.WarehouseID != nil && r.WarehouseID != *filter.WarehouseID {
			continue
		}
		if filter.State != nil && r.State != *filter.State {
			continue
		}
		if filter.From != nil && r.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && r.Timestamp.After(*filter.To) {
			continue
		}
		out = append(out, &entity.PalletDetail{Pallet: r})
	}
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakePalletRepo) byID(id int64) *entity.Pallet {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i]
		}
	}
	return nil
}

type fakeCenterRepo struct {
	centers map[int64]entity.Center
	nextID  int64
}

func (f *fakeCenterRepo) Create(center *entity.Center) error {
	center.ID = f.nextID
	f.nextID++
	f.centers[center.ID] = *center
	return nil
}

func (f *fakeCenterRepo) GetByID(id int64) (*entity.Center, error) {
	c, ok := f.centers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCenterRepo) List() ([]*entity.Center, error) {
	var out []*entity.Center
	for id := range f.centers {
		c := f.centers[id]
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCenterRepo) Delete(id int64) error {
	delete(f.centers, id)
	return nil
}

type fakeArticleRepo struct {
	articles []entity.Article
	nextID   int64
}

func (f *fakeArticleRepo) Create(article *entity.Article) error {
	for _, a := range f.articles {
		if a.Code == article.Code {
			return domain.ErrDuplicate
		}
	}
	article.ID = f.nextID
	f.nextID++
	f.articles = append(f.articles, *article)
	return nil
}

func (f *fakeArticleRepo) GetByCode(code string) (*entity.Article, error) {
	for i := range f.articles {
		if f.articles[i].Code == code {
			a := f.articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) List() ([]*entity.Article, error) {
	var out []*entity.Article
	for i := range f.articles {
		a := f.articles[i]
		out = append(out, &a)
	}
	return out, nil
}

func (f *fakeArticleRepo) Delete(id int64) error {
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles = append(f.articles[:i], f.articles[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje de la app de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	codes    *fakeCodeRepo
	pallets  *fakePalletRepo
	centers  *fakeCenterRepo
	articles *fakeArticleRepo
}

// newTestEnv monta la app con las rutas reales sobre repos en memoria, con los
// códigos user y admin vigentes y dos centros: 1 principal y 2 normal.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	exp := time.Now().Add(time.Hour)
	codes := &fakeCodeRepo{rows: map[entity.Tier][]entity.AccessCode{
		entity.TierUser:  {{Code: 1234, ExpiresAt: exp}},
		entity.TierAdmin: {{Code: 4321, ExpiresAt: exp}},
	}}
	pallets := &fakePalletRepo{nextID: 1}
	centers := &fakeCenterRepo{
		centers: map[int64]entity.Center{
			1: {ID: 1, Name: "Central", IsMain: true},
			2: {ID: 2, Name: "Girona"},
		},
		nextID: 3,
	}
	articles := &fakeArticleRepo{nextID: 1}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	accessUC := access.NewUseCase(codes, &fakeTxRunner{repo: codes}, log)
	palletUC := pallet.NewUseCase(pallets, centers)
	articleUC := usecase.NewArticleUseCase(articles)
	centerUC := usecase.NewCenterUseCase(centers)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		AccessUC:    accessUC,
		PalletUC:    palletUC,
		ArticleUC:   articleUC,
		CenterUC:    centerUC,
		RedirectURL: frontendURL,
	})

	return &testEnv{app: app, codes: codes, pallets: pallets, centers: centers, articles: articles}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// redirectMessage extrae el mensaje de la Location de una redirección 302 y
// comprueba que apunta al frontend en la ruta esperada.
func redirectMessage(t *testing.T, resp *http.Response, wantPath string) string {
	t.Helper()
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, frontendURL+wantPath, loc.Scheme+"://"+loc.Host+loc.Path)
	return loc.Query().Get("message")
}
