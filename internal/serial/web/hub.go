// Package web serves the serial output of a running emulator to
// websocket clients.
package web

import (
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/sm83/pkg/log"
)

// historySize is the number of serial bytes replayed to a
// newly connected client.
const historySize = 4096

// Hub is an io.ByteWriter that broadcasts every byte written to
// it to the connected websocket clients. It is safe to write to
// from the emulation goroutine while Run serves clients.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client

	history   *history
	currentID uint8
	log       log.Logger

	mu sync.Mutex
}

// NewHub returns a new Hub. Run must be called for it to
// serve clients.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		history:    newHistory(historySize),
		log:        l,
	}
}

// WriteByte implements io.ByteWriter. It never blocks: when the
// hub falls behind, the byte only reaches the history.
func (h *Hub) WriteByte(c byte) error {
	h.history.add([]byte{c})

	select {
	case h.broadcast <- []byte{SerialData, c}:
	default:
	}
	return nil
}

// Run handles client registration and broadcasting until done
// is closed.
func (h *Hub) Run(done <-chan struct{}) {
	// periodic info updates
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case <-done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.Send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debugf("web: client %d connected", c.ID)
		case c := <-h.unregister:
			// is this client still registered
			if _, ok := h.clients[c]; !ok {
				continue
			}
			delete(h.clients, c)
			close(c.Send)
			h.log.Debugf("web: client %d disconnected", c.ID)

			// notify connected clients that this client has disconnected
			h.sendAll([]byte{ClientClosing, c.ID})
		case msg := <-h.broadcast:
			h.sendAll(msg)
		case <-t.C:
			if len(h.clients) > 0 {
				h.sendAll(h.info())
			}
		}
	}
}

// sendAll queues a message for every client, dropping clients
// whose queue is full.
func (h *Hub) sendAll(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			close(c.Send)
			delete(h.clients, c)
		}
	}
}

// info builds a ServerInfo message holding the ID and average
// latency of every client.
func (h *Hub) info() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	data := []byte{ServerInfo}
	for c := range h.clients {
		data = append(data, c.ID)
		data = binary.LittleEndian.AppendUint16(data, c.avgLatency)
	}
	return data
}

// ServeHTTP upgrades the request to a websocket connection, and
// registers it as a client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	// create new client
	c := h.newClient(conn)

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// newClient creates a new client, queues its ID and the output
// so far, and registers it to the hub.
func (h *Hub) newClient(conn *websocket.Conn) *Client {
	h.mu.Lock()
	h.currentID++
	c := &Client{
		hub:  h,
		conn: conn,
		Send: make(chan []byte, 256),
		ID:   h.currentID,
	}
	h.mu.Unlock()

	c.Send <- append([]byte{ClientInfo, c.ID}, h.history.bytes()...)
	h.register <- c
	return c
}

// ListenAndServe serves the hub on addr.
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", h)
	h.log.Infof("web: serving serial output on %s", addr)
	return http.ListenAndServe(addr, mux)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
