package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/minwoo-choi/crossing/internal/application/replay"
	"github.com/minwoo-choi/crossing/internal/domain/board"
)

// Recorder captures per-frame input for deterministic replay.
type Recorder struct {
	data  replay.Data
	frame int
}

// NewRecorder creates a recorder. The seed must match the rng the
// entities were built with, or the replay will diverge.
func NewRecorder(seed int64, lives int) *Recorder {
	return &Recorder{
		data: replay.Data{
			Version:   "1.0",
			Seed:      seed,
			Lives:     lives,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
	}
}

// RecordFrame records one frame's direction and delta.
func (r *Recorder) RecordFrame(dir board.Direction, dt float64) {
	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:   r.frame,
		Dir: int(dir),
		Dt:  dt,
	})
	r.frame++
}

// Save writes the recording to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// FrameCount returns the number of recorded frames.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data.
func (r *Recorder) Data() replay.Data {
	return r.data
}
