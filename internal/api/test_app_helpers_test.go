package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/dayledger/internal/app"
	"github.com/terraincognita07/dayledger/internal/db"
	"github.com/terraincognita07/dayledger/internal/metrics"
)

// fixedTestNow is a Monday.
var fixedTestNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

type testServer struct {
	app      *fiber.App
	services *app.Services
	metrics  *metrics.Metrics
}

func newTestServer(t *testing.T, options HandlerOptions) *testServer {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "dayledger-api-test.db")
	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	container := app.NewServices(database, app.Options{
		Location:      time.UTC,
		WeekStartsOn:  time.Monday,
		InvoicePrefix: "INV",
		BaseCurrency:  "USD",
	})
	if options.Metrics == nil {
		options.Metrics = metrics.New()
	}

	handler := NewHandler(container, options, zerolog.Nop())
	handler.now = func() time.Time { return fixedTestNow }

	return &testServer{
		app:      NewApp(handler),
		services: container,
		metrics:  options.Metrics,
	}
}

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

func (server *testServer) do(t *testing.T, method string, target string, payload any, headers ...string) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, isRaw := payload.(string)
		if !isRaw {
			encoded, err := json.Marshal(payload)
			require.NoError(t, err)
			raw = string(encoded)
		}
		body = bytes.NewReader([]byte(raw))
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		request.Header.Set(headers[i], headers[i+1])
	}

	response, err := server.app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return testResponse{status: response.StatusCode, header: response.Header, body: content}
}

func (response testResponse) decode(t *testing.T, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(response.body, target), "body: %s", string(response.body))
}

func (response testResponse) apiError(t *testing.T) string {
	t.Helper()
	payload := map[string]string{}
	response.decode(t, &payload)
	return payload["error"]
}
