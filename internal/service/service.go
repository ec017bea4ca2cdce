// Package service exposes the advisor's four public operations over a
// WebSocket JSON protocol.
package service

import (
	"errors"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/consensus"
)

// errorCode maps the error taxonomy onto wire codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, advisor.ErrValidation):
		return "validation_error"
	case errors.Is(err, advisor.ErrNotFound):
		return "not_found"
	case errors.Is(err, advisor.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, advisor.ErrIllegalAction):
		return "illegal_action"
	case errors.Is(err, consensus.ErrNoConsensus):
		return "consensus_error"
	case errors.Is(err, advisor.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "internal_error"
	}
}
