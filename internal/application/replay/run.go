package replay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/climb/internal/application/system"
)

// Result summarizes a headless replay
type Result struct {
	Frames        int
	FinalPosition mgl64.Vec2
	FinalState    string
	BestHeight    float64
	Grabs         int
	Releases      int
	Jumps         int
}

// Run plays data through session without rendering.
// session should be freshly created on the recorded level.
func Run(data *ReplayData, session *system.Session) (Result, error) {
	if len(data.Frames) == 0 {
		return Result{}, ErrNoFrames
	}

	var result Result
	replayer := NewReplayer(*data)
	for {
		control, ok := replayer.GetInput()
		if !ok {
			break
		}

		step := session.Step(control, data.DT)
		result.Frames++
		for _, e := range step.Events {
			switch e.(type) {
			case system.GrabEvent:
				result.Grabs++
			case system.ReleaseEvent:
				result.Releases++
			case system.JumpEvent:
				result.Jumps++
			}
		}
	}

	result.FinalPosition = session.Body.Center.Position
	result.FinalState = session.Body.State.String()
	result.BestHeight = session.BestHeight
	return result, nil
}
