package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Hayk10002/crossword-generator/internal/store"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/search"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client owns one job's WebSocket connection. Its send channel is drained
// by a dedicated writer goroutine; every other goroutine that wants to
// push a frame does a non-blocking send into it, following the teacher's
// sendToClient pattern.
type Client struct {
	hub    *Hub
	jobID  string
	conn   *websocket.Conn
	send   chan []byte
	stream *search.Stream
}

// ServeWs upgrades the HTTP request to a WebSocket, starts the given
// search, and pumps demand requests in and layouts out until the
// connection closes or the search is exhausted.
func ServeWs(hub *Hub, jobStore store.JobStore, jobID string, s *search.Search, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:    hub,
		jobID:  jobID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		stream: s.Start(),
	}

	hub.Attach(jobID, client)
	hub.updateStatus(jobID, store.StatusRunning)

	go client.pumpLayouts(jobStore)
	go client.writePump()
	client.readPump()

	return nil
}

// readPump relays inbound demand messages into the search's request
// channel until the connection closes, then tears down the stream.
func (c *Client) readPump() {
	defer func() {
		c.stream.Close()
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("invalid message")
			continue
		}

		req, err := decodeRequest(msg)
		if err != nil {
			c.sendError(err.Error())
			continue
		}
		c.stream.Request(req)
	}
}

func decodeRequest(msg Message) (search.Request, error) {
	switch msg.Type {
	case MsgCount:
		var p CountPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				return search.Request{}, err
			}
		}
		return search.Count(p.N), nil
	case MsgAll:
		return search.All(), nil
	case MsgStop:
		return search.Stop(), nil
	default:
		return search.Request{}, errUnknownMessageType(msg.Type)
	}
}

type errUnknownMessageType MessageType

func (e errUnknownMessageType) Error() string { return "unknown message type: " + string(e) }

// pumpLayouts pulls layouts from the search stream, caches each one in the
// job's layout page, and queues it as an outbound frame. It finishes the
// job's stored status once the search is exhausted.
func (c *Client) pumpLayouts(jobStore store.JobStore) {
	ctx := context.Background()
	for {
		layout, ok := c.stream.Next()
		if !ok {
			c.hub.updateStatus(c.jobID, store.StatusCompleted)
			c.queueDone()
			c.hub.Detach(c.jobID, c)
			close(c.send)
			return
		}
		c.emitLayout(ctx, jobStore, layout)
	}
}

func (c *Client) emitLayout(ctx context.Context, jobStore store.JobStore, layout *crossword.Crossword) {
	data, err := json.Marshal(layout)
	if err != nil {
		log.Printf("realtime: marshal layout for job %s: %v", c.jobID, err)
		return
	}

	if err := jobStore.AppendLayoutPage(ctx, c.jobID, string(data)); err != nil {
		log.Printf("realtime: cache layout for job %s: %v", c.jobID, err)
	}

	c.queue(MsgLayout, data)
}

func (c *Client) queueDone() {
	c.queue(MsgDone, nil)
}

func (c *Client) sendError(message string) {
	data, _ := json.Marshal(ErrorPayload{Message: message})
	c.queue(MsgError, data)
}

// queue marshals a Message and performs a non-blocking send into the
// client's buffered channel, dropping the frame if the buffer is already
// full rather than blocking the producer.
func (c *Client) queue(msgType MessageType, payload json.RawMessage) {
	data, err := json.Marshal(Message{Type: msgType, Payload: payload})
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// writePump drains the client's send channel onto the WebSocket connection
// and keeps it alive with periodic pings, exiting when the channel is
// closed or a write fails.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
