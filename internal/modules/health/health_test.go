package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/pkg/cron"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T, checks map[string]Pinger) (*gin.Engine, *cron.Scheduler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sched := cron.New(zap.NewNop())
	r := gin.New()
	NewHandler(sched, checks).RegisterRoutes(r.Group("/api"))
	return r, sched
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHealth_OK(t *testing.T) {
	r, _ := setup(t, map[string]Pinger{
		"redis":    PingFunc(func(context.Context) error { return nil }),
		"database": nil,
	})

	w := do(r, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string          `json:"status"`
		Backends map[string]bool `json:"backends"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, map[string]bool{"redis": true}, body.Backends)
}

func TestHealth_Degraded(t *testing.T) {
	r, _ := setup(t, map[string]Pinger{
		"redis": PingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	w := do(r, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}

func TestCronEndpoints(t *testing.T) {
	r, sched := setup(t, nil)
	runs := 0
	require.NoError(t, sched.Register(cron.Job{
		Name:     "sweep",
		Interval: time.Hour,
		Fn:       func(context.Context) error { runs++; return nil },
	}))

	w := do(r, http.MethodPost, "/api/health/cron/run/sweep")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runs)

	w = do(r, http.MethodPost, "/api/health/cron/run/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/health/cron")
	require.Equal(t, http.StatusOK, w.Code)
	var items map[string]cron.ListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Contains(t, items, "sweep")
	assert.Equal(t, cron.StatusFulfill, items["sweep"].Status)
	assert.Equal(t, 1, items["sweep"].Runs)
}
