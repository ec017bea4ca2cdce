package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-advisor/internal/advisor"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection wraps one WebSocket client.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	registry  *advisor.Registry
	logger    zerolog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper around an upgraded socket.
func NewConnection(conn *websocket.Conn, registry *advisor.Registry, logger zerolog.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:     conn,
		send:     make(chan *Message, 64),
		registry: registry,
		logger:   logger.With().Str("component", "conn").Str("remote", conn.RemoteAddr().String()).Logger(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins handling the connection.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("websocket error")
			}
			return
		}
		c.handleMessage(&msg)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error().Err(err).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches one inbound request. Requests on a single
// connection are handled in arrival order; hand-level exclusion across
// connections is enforced by the registry's per-hand lock.
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug().Str("type", msg.Type.String()).Str("requestId", msg.RequestID).Msg("received message")

	switch msg.Type {
	case MessageTypeCreateHand:
		var data CreateHandData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "validation_error", "failed to parse create hand data")
			return
		}
		result, err := c.registry.CreateHand(data)
		if err != nil {
			c.sendError(msg.RequestID, errorCode(err), err.Error())
			return
		}
		c.reply(msg.RequestID, MessageTypeHandCreated, result)

	case MessageTypeRequestAction:
		var data RequestActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "validation_error", "failed to parse request action data")
			return
		}
		result, err := c.registry.RequestAction(c.ctx, data.HandID)
		if err != nil {
			c.sendError(msg.RequestID, errorCode(err), err.Error())
			return
		}
		c.reply(msg.RequestID, MessageTypeActionResult, result)

	case MessageTypeAdvanceStage:
		var data AdvanceStageData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "validation_error", "failed to parse advance stage data")
			return
		}
		result, err := c.registry.AdvanceStage(data.HandID, data.BoardCards, data.PotSize, data.CurrentBet, data.Stack)
		if err != nil {
			c.sendError(msg.RequestID, errorCode(err), err.Error())
			return
		}
		c.reply(msg.RequestID, MessageTypeStageAdvanced, result)

	case MessageTypeGetHand:
		var data GetHandData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, "validation_error", "failed to parse get hand data")
			return
		}
		view, err := c.registry.View(data.HandID)
		if err != nil {
			c.sendError(msg.RequestID, errorCode(err), err.Error())
			return
		}
		c.reply(msg.RequestID, MessageTypeHandState, view)

	default:
		c.sendError(msg.RequestID, "validation_error", "unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) reply(requestID string, messageType MessageType, data interface{}) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to create reply message")
		return
	}
	msg.RequestID = requestID
	c.sendMessage(msg)
}

func (c *Connection) sendError(requestID, code, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to create error message")
		return
	}
	msg.RequestID = requestID
	c.sendMessage(msg)
}

func (c *Connection) sendMessage(msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			// Send channel closed during shutdown.
			c.logger.Debug().Interface("reason", r).Msg("send on closed connection")
		}
	}()

	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	default:
		c.logger.Warn().Msg("send buffer full, closing connection")
		_ = c.Close()
	}
}
