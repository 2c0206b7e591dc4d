package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/sidjamyl/Darine-emballage/models"
)

func newWebSocketServer(t *testing.T) (string, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)
	server := httptest.NewServer(r)
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws", server.Close
}

func wsClientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

// Connections register and drop while checkouts broadcast; the client map
// must survive the churn. Run under -race this catches any unguarded access.
func TestBroadcastConcurrentWithClientChurn(t *testing.T) {
	wsURL, shutdown := newWebSocketServer(t)
	defer shutdown()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 30; i++ {
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			if err != nil {
				continue
			}
			conn.Close()
		}
	}()

	for i := 0; i < 30; i++ {
		broadcastNewOrder(models.Order{OrderNumber: "DRN-1726000000000-9F2K310AB"})
	}
	<-done

	// Every dropped connection removes itself from the map.
	require.Eventually(t, func() bool { return wsClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	wsURL, shutdown := newWebSocketServer(t)
	defer shutdown()

	require.Eventually(t, func() bool { return wsClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return wsClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	broadcastNewOrder(models.Order{OrderNumber: "DRN-1726000000001-AAAAAAAAA", CustomerName: "Amine Benali"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(payload), "DRN-1726000000001-AAAAAAAAA")
}
