package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nexconsult/juris-api/internal/config"
	"github.com/nexconsult/juris-api/internal/logger"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewContainerWithoutRedis(t *testing.T) {
	container, err := NewContainer(testConfig(t), logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	assert.Equal(t, 92, container.Router.Len())

	health := container.Health()
	assert.Contains(t, health, "cache")
	assert.Contains(t, health, "validation")
	assert.Contains(t, health, "datajud")
}

func TestNewContainerLoadsTribunalTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tribunais.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"chave":{"segmento":8,"tribunal":98},"sigla":"TJTESTE"}]`), 0o644))

	cfg := testConfig(t)
	cfg.Tribunal.TablePath = path

	container, err := NewContainer(cfg, logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	entry, err := container.Router.Lookup(tribunal.Key{Branch: 8, Tribunal: 98})
	require.NoError(t, err)
	assert.Equal(t, "TJTESTE", entry.Identifier)
}

func TestNewContainerRejectsDuplicateWithoutOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tribunais.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"chave":{"segmento":8,"tribunal":26},"sigla":"TJSP"}]`), 0o644))

	cfg := testConfig(t)
	cfg.Tribunal.TablePath = path

	_, err := NewContainer(cfg, logger.Discard())
	assert.ErrorIs(t, err, tribunal.ErrDuplicateKey)
}

func TestMetricsService(t *testing.T) {
	m, err := NewMetricsService()
	require.NoError(t, err)
	defer m.Shutdown(context.Background())

	ctx := context.Background()
	m.RecordRequest(ctx, "GET", "/api/v1/cpf/:cpf", 200, 2*time.Millisecond)
	m.RecordRequest(ctx, "GET", "/api/v1/cpf/:cpf", 400, 4*time.Millisecond)
	m.RecordRequest(ctx, "GET", "/api/v1/processos/:numero/datajud", 502, 6*time.Millisecond)
	m.RecordCacheHit(ctx, true)
	m.RecordCacheHit(ctx, false)
	m.RecordCacheHit(ctx, false)

	metrics := m.GetMetrics()
	assert.Equal(t, int64(3), metrics["total"])
	assert.Equal(t, int64(2), metrics["success"])
	assert.Equal(t, int64(1), metrics["errors"])
	assert.InDelta(t, 66.67, metrics["success_rate"], 0.01)
	assert.InDelta(t, 4.0, metrics["avg_response_time_ms"], 0.001)
	assert.Equal(t, int64(1), metrics["cache_hits"])
	assert.Equal(t, int64(2), metrics["cache_misses"])
	assert.Equal(t, int64(2), metrics["endpoints"].(map[string]int64)["GET /api/v1/cpf/:cpf"])
}

func TestMetricsServiceHandler(t *testing.T) {
	m, err := NewMetricsService()
	require.NoError(t, err)
	defer m.Shutdown(context.Background())

	m.RecordRequest(context.Background(), "GET", "/health", 200, time.Millisecond)
	m.RecordCacheHit(context.Background(), true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, want := range []string{
		"# TYPE http_server_requests_total counter",
		`http_route="/health"`,
		`http_response_status_code="200"`,
		"# TYPE http_server_request_duration_seconds histogram",
		`datajud_cache_lookups_total{datajud_cache_hit="true"`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestNewContainerExportsWorkerGauges(t *testing.T) {
	container, err := NewContainer(testConfig(t), logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	w := httptest.NewRecorder()
	container.MetricsService.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "datajud_worker_active")
	assert.Contains(t, w.Body.String(), "datajud_worker_queue")
}
