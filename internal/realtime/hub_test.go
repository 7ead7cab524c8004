package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHub поднимает хаб за httptest-сервером с gin-маршрутом /ws
func newTestHub(t *testing.T) (*Hub, string, chan int) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	counts := make(chan int, 16)
	hub := NewHub(logger, func(n int) { counts <- n })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", hub.Handle)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", counts
}

func dial(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitCount(t *testing.T, counts chan int, want int) {
	deadline := time.After(2 * time.Second)
	for {
		select {
		case n := <-counts:
			if n == want {
				return
			}
		case <-deadline:
			t.Fatalf("client count never reached %d", want)
		}
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub, url, counts := newTestHub(t)

	first := dial(t, url)
	second := dial(t, url)
	waitCount(t, counts, 2)
	assert.Equal(t, 2, hub.Clients())

	require.NoError(t, hub.Broadcast(context.Background(), MessageTypeView, map[string]int{"incidents": 1}))

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		assert.Equal(t, MessageTypeView, msg.Type)
		assert.Equal(t, map[string]any{"incidents": 1.0}, msg.Payload)
	}
}

func TestHub_NewClientGetsLastMessage(t *testing.T) {
	hub, url, counts := newTestHub(t)

	early := dial(t, url)
	waitCount(t, counts, 1)
	require.NoError(t, hub.Broadcast(context.Background(), MessageTypeView, "snapshot"))
	readMessage(t, early)

	late := dial(t, url)
	msg := readMessage(t, late)
	assert.Equal(t, "snapshot", msg.Payload)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, url, counts := newTestHub(t)

	conn := dial(t, url)
	waitCount(t, counts, 1)

	conn.Close()
	waitCount(t, counts, 0)
	assert.Equal(t, 0, hub.Clients())
}
