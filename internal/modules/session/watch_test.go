package session

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thorvi/playtrack/internal/modules/session/domain"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// listCountingClient wraps a record client and counts List calls, so tests
// can observe whether a subscription is still polling.
type listCountingClient struct {
	record.Client
	lists atomic.Int64
}

func (c *listCountingClient) List(ctx context.Context, collection string, opts record.ListOptions) ([]record.Record, error) {
	c.lists.Add(1)
	return c.Client.List(ctx, collection, opts)
}

func dialWatch(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return conn
}

func Test_HandleWatch_Streams_Session_List_Reflecting_Mutations(t *testing.T) {
	// Arrange
	client := &listCountingClient{Client: record.NewMemoryClient()}
	store := NewStore(client, "https://pb.example.dev", testPollInterval, zap.NewNop())

	server := httptest.NewServer(HandleWatch(store, zap.NewNop()))
	defer server.Close()

	conn := dialWatch(t, server)
	defer conn.Close()

	// Act - mutate after the socket is established.
	_, err := store.Create(context.Background(), testInput("Zelda"))
	require.NoError(t, err)

	// Assert - a delivery reflecting the mutation arrives within a few
	// poll intervals.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	for {
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err, "no delivery reflecting the mutation arrived")

		var sessions []domain.Session
		require.NoError(t, json.Unmarshal(payload, &sessions))

		if len(sessions) == 1 && sessions[0].GameName == "Zelda" {
			return
		}
	}
}

func Test_HandleWatch_Stops_Polling_When_Peer_Closes(t *testing.T) {
	// Arrange
	client := &listCountingClient{Client: record.NewMemoryClient()}
	store := NewStore(client, "https://pb.example.dev", testPollInterval, zap.NewNop())

	server := httptest.NewServer(HandleWatch(store, zap.NewNop()))
	defer server.Close()

	conn := dialWatch(t, server)

	// Let the subscription poll at least once before closing.
	require.Eventually(t, func() bool {
		return client.lists.Load() > 0
	}, time.Second, testPollInterval)

	// Act
	require.NoError(t, conn.Close())

	// Assert - after the close lands and in-flight fetches drain, the
	// fetch count stays flat.
	time.Sleep(4 * testPollInterval)
	settled := client.lists.Load()

	time.Sleep(4 * testPollInterval)
	require.Equal(t, settled, client.lists.Load())
}
