// Package trace records per-tick simulation frames so external visualizers
// can replay a boarding run; it is the file-based stand-in for the animation
// layer the engine deliberately excludes.
package trace

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/boarding-sim/boarding-sim/sim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AgentFrame is one passenger's position and state within a frame.
type AgentFrame struct {
	ID    int    `json:"id"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	State string `json:"state"`
	Late  bool   `json:"late"`
}

// Frame captures the cabin at one tick boundary.
type Frame struct {
	Tick   int64        `json:"tick"`
	Agents []AgentFrame `json:"agents"`
}

// Recorder accumulates frames for one simulation run.
type Recorder struct {
	RunID      string  `json:"run_id"`
	FinalTicks int64   `json:"final_ticks"`
	Frames     []Frame `json:"frames"`
}

// NewRecorder creates a Recorder with a fresh run identifier.
func NewRecorder() *Recorder {
	return &Recorder{
		RunID:  uuid.NewString(),
		Frames: make([]Frame, 0),
	}
}

// Record appends a frame built from an engine snapshot.
func (r *Recorder) Record(snap sim.Snapshot) {
	frame := Frame{
		Tick:   snap.Tick,
		Agents: make([]AgentFrame, len(snap.Agents)),
	}
	for i, a := range snap.Agents {
		frame.Agents[i] = AgentFrame{
			ID:    a.ID,
			Row:   a.Row,
			Col:   a.Col,
			State: string(a.State),
			Late:  a.Late,
		}
	}
	if snap.Frozen {
		r.FinalTicks = snap.FinalTicks
	}
	r.Frames = append(r.Frames, frame)
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.Frames)
}

// WriteFile serializes the recording as indented JSON.
func (r *Recorder) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trace %s: %w", path, err)
	}
	return nil
}
