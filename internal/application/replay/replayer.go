package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/dodgeball/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input and dt for the current tick and advances
func (r *Replayer) GetInput() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Shield:  fi.S,
		ShieldX: fi.SX,
		ShieldY: fi.SY,
	}, fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the name of the recorded level
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Level:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
		}
	}

	return data
}
