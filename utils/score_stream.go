package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// AllSources subscribes a client to every source.
const AllSources = "*"

var heartbeatInterval = 20 * time.Second

type SSEClient struct {
	Chan  chan []byte
	Close chan struct{}
	once  sync.Once
}

func NewSSEClient() *SSEClient {
	return &SSEClient{
		Chan:  make(chan []byte, 16),
		Close: make(chan struct{}),
	}
}

func (c *SSEClient) shutdown() {
	c.once.Do(func() { close(c.Close) })
}

var (
	SSEClients = make(map[string][]*SSEClient)
	mu         sync.Mutex
)

// AddSSEClient subscribes c to events of one source.
func AddSSEClient(source string, c *SSEClient) {
	mu.Lock()
	defer mu.Unlock()
	SSEClients[source] = append(SSEClients[source], c)
}

// RemoveSSEClient unsubscribes c.
func RemoveSSEClient(source string, c *SSEClient) {
	mu.Lock()
	defer mu.Unlock()
	removeLocked(source, c)
}

func removeLocked(source string, c *SSEClient) {
	list := SSEClients[source]
	for i, cl := range list {
		if cl == c {
			SSEClients[source] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(SSEClients[source]) == 0 {
		delete(SSEClients, source)
	}
}

// BroadcastScoreEvent sends payload to the clients of source and to the
// clients listening on every source. Clients that cannot keep up are
// disconnected.
func BroadcastScoreEvent(source string, payload interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal payload", "component", "sse", "err", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	deliver := func(key string) {
		for _, client := range append([]*SSEClient(nil), SSEClients[key]...) {
			select {
			case client.Chan <- msg:
			default:
				client.shutdown()
				removeLocked(key, client)
			}
		}
	}
	deliver(source)
	if source != AllSources {
		deliver(AllSources)
	}
}

// StreamScores streams cvss.scored events as server sent events. The
// optional source query parameter narrows the stream to one producer.
func StreamScores(c *fiber.Ctx) error {
	source := c.Query("source", AllSources)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	client := NewSSEClient()
	AddSSEClient(source, client)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer RemoveSSEClient(source, client)
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case <-client.Close:
				return
			case <-ticker.C:
				fmt.Fprint(w, ":\n\n")
			case msg := <-client.Chan:
				fmt.Fprintf(w, "data: %s\n\n", msg)
			}
			// a failed flush means the peer went away
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
