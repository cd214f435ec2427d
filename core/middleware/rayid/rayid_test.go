package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(LocalsKey).(string)
		return c.SendString(rid)
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(HeaderName)
	_, parseErr := uuid.Parse(rid)
	assert.NoError(t, parseErr)
}

func TestRayID_ReusesValidHeader(t *testing.T) {
	want := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, want)

	resp, err := newApp().Test(req)
	require.NoError(t, err)

	assert.Equal(t, want, resp.Header.Get(HeaderName))
}

func TestRayID_ReplacesInvalidHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "not-a-uuid")

	resp, err := newApp().Test(req)
	require.NoError(t, err)

	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(HeaderName))
}
