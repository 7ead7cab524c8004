package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/city_response_dashboard/internal/config"
	"github.com/shenikar/city_response_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер, доставляющий на переданный URL
func newTestWorker(t *testing.T, url, secret string) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewAlertWorker(nil, logger, cfg)
}

func testPayload(t *testing.T) (AlertEvent, string) {
	event := NewAlertEvent(KindIncidentAppeared, models.Incident{ID: 7, Type: "fire", Status: "active"}, time.Now())
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, raw := testPayload(t)
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	w := newTestWorker(t, srv.URL, "s3cret")
	err := w.deliver(context.Background(), event, raw)

	require.NoError(t, err)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, Sign(raw, "s3cret"), gotSignature)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	event, raw := testPayload(t)
	var header atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get(SignatureHeader))
	}))
	t.Cleanup(srv.Close)

	require.NoError(t, newTestWorker(t, srv.URL, "").deliver(context.Background(), event, raw))
	assert.Equal(t, "", header.Load())
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	event, raw := testPayload(t)
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	err := newTestWorker(t, srv.URL, "").deliver(context.Background(), event, raw)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	event, raw := testPayload(t)
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	err := newTestWorker(t, srv.URL, "").deliver(context.Background(), event, raw)

	assert.ErrorIs(t, err, errUndelivered)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	event, raw := testPayload(t)
	assert.NoError(t, newTestWorker(t, "", "").deliver(context.Background(), event, raw))
}

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		Sign("what do ya want for nothing?", "Jefe"))
}
