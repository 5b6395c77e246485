package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/dodgeball/internal/application/system"
)

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder(seed int64, level string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input and the dt it was stepped with
func (r *Recorder) RecordFrame(input system.InputState, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		L:  input.Left,
		R:  input.Right,
		U:  input.Up,
		D:  input.Down,
		S:  input.Shield,
		SX: input.ShieldX,
		SY: input.ShieldY,
		DT: dt,
	})
	r.frame++
}

// Encode writes the replay data as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := r.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recorded data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename from the level name and current time
func GenerateFilename(level string) string {
	return fmt.Sprintf("replay_%s_%s.json", level, time.Now().Format("20060102_150405"))
}
