package tradezone

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	feature := NewFeature(svc)
	_ = feature.Load(app)
	return app
}

func TestHandleReconcile(t *testing.T) {
	fio := newFakeIO(catalogSources())
	app := newTestApp(NewService(serviceConfig(), fio, fio, zap.NewNop()))

	req := httptest.NewRequest("POST", "/tradezone/reconcile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "false", resp.Header.Get("X-Run-Shared"))

	body, _ := io.ReadAll(resp.Body)
	var summary reconcile.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 2, summary.Lanes[reconcile.LaneUpdated])
	assert.Len(t, fio.written, 3)
}

func TestHandleReconcile_WrongMethod(t *testing.T) {
	fio := newFakeIO(map[string]tabular.Table{})
	app := newTestApp(NewService(serviceConfig(), fio, fio, zap.NewNop()))

	req := httptest.NewRequest("GET", "/tradezone/reconcile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	fio := newFakeIO(nil)
	f := NewFeature(NewService(serviceConfig(), fio, fio, zap.NewNop()))

	assert.Equal(t, "tradezone", f.Name())
	assert.True(t, f.IsEnabled())
	assert.False(t, NewFeature(nil).IsEnabled())
}
