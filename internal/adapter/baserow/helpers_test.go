package baserow

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_inventory/internal/adapter/logger"
	"github.com/sm8ta/webike_inventory/internal/i18n"
)

const testToken = "secret-token"

type remoteCall struct {
	method string
	status int
}

type recordingMetrics struct {
	calls []remoteCall
}

func (m *recordingMetrics) RecordMetrics(c *gin.Context, start time.Time) {}

func (m *recordingMetrics) RecordRemoteCall(method string, status int, duration time.Duration) {
	m.calls = append(m.calls, remoteCall{method: method, status: status})
}

func (m *recordingMetrics) SetInventory(models, units int) {}

// newTestGateway starts a fake Baserow answering with handler.
func newTestGateway(t *testing.T, handler http.HandlerFunc, opts ...func(*GatewayConfig)) (*Gateway, *recordingMetrics) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := GatewayConfig{
		URL:            server.URL + "/api/database/rows/table",
		Token:          testToken,
		Timeout:        2 * time.Second,
		GenericMessage: "generic failure",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics := &recordingMetrics{}
	gateway, err := NewGateway(cfg, logger.NewNopLogger(), metrics)
	require.NoError(t, err)
	return gateway, metrics
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func englishTranslator() *i18n.Translator {
	return i18n.New("en")
}
