// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import "fmt"

// Status is the outcome of one Process call.
type Status uint8

const (
	// StatusReady is returned by Init. Process never returns it.
	StatusReady Status = iota
	// StatusStallOnInput means every offered input byte was consumed and more is needed.
	StatusStallOnInput
	// StatusStallOnOutput means the output cursor is full; supply more room and call again.
	StatusStallOnOutput
	// StatusEfficiencyCheck is raised once per block after the configured number
	// of signatures. Stats tells the caller how the block is doing.
	StatusEfficiencyCheck
	// StatusNewBlock is raised at every block boundary. When a reset cycle is
	// configured, the dictionary may have just been reset (see Stats.Resets).
	StatusNewBlock
	// StatusFinished means the stream ended and every byte was written.
	StatusFinished
	// StatusError means the codec was driven from an invalid stage.
	StatusError
)

var statusNames = [...]string{
	StatusReady:           "ready",
	StatusStallOnInput:    "stall on input",
	StatusStallOnOutput:   "stall on output",
	StatusEfficiencyCheck: "efficiency check",
	StatusNewBlock:        "new block",
	StatusFinished:        "finished",
	StatusError:           "error",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("status(%d)", uint8(s))
}

// Err returns ErrInvalidState for StatusError and nil otherwise.
func (s Status) Err() error {
	if s == StatusError {
		return ErrInvalidState
	}

	return nil
}

// Stats counts the work done by a codec since Init.
type Stats struct {
	// In and Out are the bytes consumed from input cursors and written to output cursors.
	In  int64 `json:"in"`
	Out int64 `json:"out"`
	// Signatures is the number of signatures started.
	Signatures int64 `json:"signatures"`
	// Blocks is the number of block boundaries crossed.
	Blocks int64 `json:"blocks"`
	// Resets is the number of scheduled dictionary resets (Init not included).
	Resets int64 `json:"resets"`
}

// Ratio returns Out/In, or 0 before any input was consumed.
func (s Stats) Ratio() float64 {
	if s.In == 0 {
		return 0
	}

	return float64(s.Out) / float64(s.In)
}
