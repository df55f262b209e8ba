package replay

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/younwookim/climb/internal/domain/entity"
)

// Version is the replay file format version
const Version = "2.0"

// FrameInput records the body control of a single frame
type FrameInput struct {
	F    int     `json:"f"`              // Frame number
	HX   float64 `json:"hx"`             // HandTarget x
	HY   float64 `json:"hy"`             // HandTarget y
	M    float64 `json:"m,omitempty"`    // MoveSpeed
	TH   float64 `json:"th,omitempty"`   // TargetHeight
	Hold bool    `json:"hold,omitempty"` // Hold
	J    bool    `json:"j,omitempty"`    // Jump
}

// NewFrameInput captures control as frame f
func NewFrameInput(f int, c entity.BodyControl) FrameInput {
	return FrameInput{
		F:    f,
		HX:   c.HandTarget[0],
		HY:   c.HandTarget[1],
		M:    c.MoveSpeed,
		TH:   c.TargetHeight,
		Hold: c.Hold,
		J:    c.Jump,
	}
}

// Control returns the recorded body control
func (fi FrameInput) Control() entity.BodyControl {
	return entity.BodyControl{
		HandTarget:   mgl64.Vec2{fi.HX, fi.HY},
		MoveSpeed:    fi.M,
		TargetHeight: fi.TH,
		Hold:         fi.Hold,
		Jump:         fi.J,
	}
}

// ReplayData contains all data needed to replay a session.
// Seed is only meaningful for generated levels.
type ReplayData struct {
	Version   string       `json:"version"`
	ID        uuid.UUID    `json:"id"`
	Level     string       `json:"level"`
	Seed      int64        `json:"seed"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
