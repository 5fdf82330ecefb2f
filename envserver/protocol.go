// Package envserver exposes boarding simulations to an external decision
// client over WebSocket. Every connection owns an isolated simulation.
package envserver

import (
	"errors"

	"github.com/inference-sim/boarding-sim/sim"
)

// Operations accepted in Request.Op.
const (
	OpReset  = "reset"
	OpMask   = "mask"
	OpStep   = "step"
	OpRender = "render"
)

// Error kinds reported in Response.ErrorKind.
const (
	KindInvalidAction         = "invalid_action"
	KindInvalidSeatAssignment = "invalid_seat_assignment"
	KindInvalidConfiguration  = "invalid_configuration"
	KindProtocol              = "protocol"
)

// Request is one client message.
type Request struct {
	Op              string   `json:"op"`
	NumRows         int      `json:"num_rows,omitempty"`         // reset: overrides the server default when > 0
	SeatsPerRow     int      `json:"seats_per_row,omitempty"`    // reset: overrides the server default when > 0
	BaggageFraction *float64 `json:"baggage_fraction,omitempty"` // reset: overrides the server default when set
	Seed            *int64   `json:"seed,omitempty"`             // reset: overrides the server default when set
	Row             int      `json:"row"`                        // step: 0-based lobby row
	Mode            string   `json:"mode,omitempty"`             // render: "human" or "compact"
}

// Response answers exactly one Request.
type Response struct {
	Op          string        `json:"op"`
	Observation []int         `json:"observation,omitempty"`
	Mask        []bool        `json:"mask,omitempty"`
	Reward      float64       `json:"reward"`
	Terminated  bool          `json:"terminated"`
	Info        *sim.StepInfo `json:"info,omitempty"`
	Render      string        `json:"render,omitempty"`
	Error       string        `json:"error,omitempty"`
	ErrorKind   string        `json:"error_kind,omitempty"`
}

var errNoEpisode = errors.New("no episode: send reset first")

func errorKind(err error) string {
	switch {
	case errors.Is(err, sim.ErrInvalidAction):
		return KindInvalidAction
	case errors.Is(err, sim.ErrInvalidSeatAssignment):
		return KindInvalidSeatAssignment
	case errors.Is(err, sim.ErrInvalidConfiguration):
		return KindInvalidConfiguration
	default:
		return KindProtocol
	}
}
