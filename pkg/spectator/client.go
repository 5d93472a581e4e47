package spectator

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const clientTimeout = 40 * time.Second

const eventBufferSize = 32

var acceptOptions = &websocket.AcceptOptions{
	InsecureSkipVerify: true,
	CompressionMode:    websocket.CompressionContextTakeover,
}

type client struct {
	conn       *websocket.Conn
	address    string
	events     chan []byte
	terminated bool
	lock       sync.Mutex
	verbose    bool
}

func newClient(w http.ResponseWriter, r *http.Request, verbose bool) *client {
	conn, err := websocket.Accept(w, r, acceptOptions)
	if err != nil {
		return nil
	}

	return &client{
		conn:    conn,
		address: r.RemoteAddr,
		events:  make(chan []byte, eventBufferSize),
		verbose: verbose,
	}
}

// HandleReadWrite sends events until the connection is closed.
func (c *client) HandleReadWrite() {
	// Spectators only receive. Reading is needed to process control frames.
	ctx := c.conn.CloseRead(context.Background())

	for {
		select {
		case <-ctx.Done():
			c.Terminate()
			return
		case event := <-c.events:
			writeCtx, cancel := context.WithTimeout(ctx, clientTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, event)
			cancel()
			if err != nil {
				c.Terminate()
				return
			}

			if c.verbose {
				log.Printf("-> %s %s", c.address, event)
			}
		}
	}
}

// Write queues an event. Clients which can not keep up are disconnected.
// It returns whether the client is still connected.
func (c *client) Write(message []byte) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.terminated {
		return false
	}

	select {
	case c.events <- message:
		return true
	default:
		c.terminated = true
		c.conn.CloseNow()
		return false
	}
}

func (c *client) Terminate() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.terminated {
		return
	}
	c.terminated = true
	c.conn.CloseNow()
}

func (c *client) Terminated() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.terminated
}
