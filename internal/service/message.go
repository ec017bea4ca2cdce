package service

import (
	"encoding/json"
	"time"

	"github.com/lox/holdem-advisor/internal/advisor"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server messages
	MessageTypeCreateHand    MessageType = "create_hand"
	MessageTypeRequestAction MessageType = "request_action"
	MessageTypeAdvanceStage  MessageType = "advance_stage"
	MessageTypeGetHand       MessageType = "get_hand"

	// Server to client messages
	MessageTypeHandCreated   MessageType = "hand_created"
	MessageTypeActionResult  MessageType = "action_result"
	MessageTypeStageAdvanced MessageType = "stage_advanced"
	MessageTypeHandState     MessageType = "hand_state"
	MessageTypeError         MessageType = "error"
)

func (mt MessageType) String() string {
	return string(mt)
}

// Message is the WebSocket envelope shared by both directions.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage wraps data in an envelope stamped with the current time.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server payloads

// CreateHandData mirrors advisor.CreateParams on the wire.
type CreateHandData = advisor.CreateParams

type RequestActionData struct {
	HandID string `json:"handId"`
}

type AdvanceStageData struct {
	HandID     string `json:"handId"`
	BoardCards string `json:"boardCards"`
	PotSize    int    `json:"potSize"`
	CurrentBet int    `json:"currentBet"`

	// Stack optionally overwrites the hand's stack; omit to keep it.
	Stack *int `json:"stack,omitempty"`
}

type GetHandData struct {
	HandID string `json:"handId"`
}

// Server → Client payloads reuse the advisor result types directly:
// advisor.CreateResult, advisor.ActionResult, advisor.StageResult and
// advisor.View all carry wire tags.

// ErrorData reports a failed operation. Code is one of the taxonomy codes
// (validation_error, not_found, invalid_state, illegal_action,
// consensus_error, insufficient_funds) or internal_error.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
