package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/climb/internal/domain/entity"
)

// ErrNoFrames is returned for a replay without any recorded frame
var ErrNoFrames = errors.New("replay has no frames")

// Replayer feeds recorded controls back frame by frame
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	if data.DT <= 0 {
		return nil, fmt.Errorf("invalid replay dt %v", data.DT)
	}
	return &data, nil
}

// GetInput returns the control for the current frame and advances
func (r *Replayer) GetInput() (entity.BodyControl, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.BodyControl{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Control(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done returns true once every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
