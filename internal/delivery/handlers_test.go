package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/chad_bot/internal/history"
	"github.com/Vovarama1992/chad_bot/internal/settings"
	"github.com/Vovarama1992/chad_bot/internal/shop"
	"github.com/Vovarama1992/chad_bot/internal/storage"
)

type apiEnv struct {
	server   *httptest.Server
	history  history.Service
	settings settings.Service
	shop     shop.Service
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	historySvc := history.NewService(history.NewInfra(db), 5)
	settingsSvc := settings.NewService(settings.NewInfra(db), []string{"chadai", "openai"}, settings.DefaultTemperature)
	shopSvc := shop.NewService(shop.NewInfra(db))

	zl := logger.NewZapLogger(zap.NewNop().Sugar())

	r := chi.NewRouter()
	RegisterRoutes(r,
		NewHistoryHandler(historySvc, settingsSvc, zl),
		NewShopHandler(shopSvc),
	)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &apiEnv{server: srv, history: historySvc, settings: settingsSvc, shop: shopSvc}
}

func TestGetHistory(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	_, err := env.history.Append(ctx, 42, "chadai", 0.7, "hello", "hi there")
	require.NoError(t, err)

	resp, err := http.Get(env.server.URL + "/history/42")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []history.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Prompt)
	assert.Equal(t, "hi there", records[0].Response)
}

func TestGetHistory_BadUserID(t *testing.T) {
	env := newAPIEnv(t)

	resp, err := http.Get(env.server.URL + "/history/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClearHistory(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	_, err := env.history.Append(ctx, 42, "chadai", 0.7, "one", "r")
	require.NoError(t, err)
	_, err = env.history.Append(ctx, 42, "chadai", 0.7, "two", "r")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, env.server.URL+"/history/42", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body["deleted"])
}

func TestGetStatus(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	_, err := env.settings.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	_, err = env.settings.GetOrCreate(ctx, 2)
	require.NoError(t, err)
	_, err = env.history.Append(ctx, 1, "chadai", 0.7, "p", "r")
	require.NoError(t, err)

	resp, err := http.Get(env.server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body["users"])
	assert.Equal(t, int64(1), body["requests"])
}

func TestProducts_CreateAndGet(t *testing.T) {
	env := newAPIEnv(t)

	payload := []byte(`{"name": "Футболка", "description": "Хлопок", "price": 1500}`)
	resp, err := http.Post(env.server.URL+"/products", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created["id"])

	resp2, err := http.Get(env.server.URL + "/products")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var products []shop.Product
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Футболка", products[0].Name)
}

func TestProducts_CreateInvalid(t *testing.T) {
	env := newAPIEnv(t)

	for _, payload := range []string{
		`{"name": "", "price": 100}`,
		`{"name": "Кружка", "price": 0}`,
	} {
		resp, err := http.Post(env.server.URL+"/products", "application/json", bytes.NewReader([]byte(payload)))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newAPIEnv(t)

	resp, err := http.Get(env.server.URL + "/products/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
