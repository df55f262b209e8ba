package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/domain/geom"
	"github.com/younwookim/climb/internal/infrastructure/config"
)

// InputSystem maps keyboard and mouse to body controls. Mouse motion moves
// the hand target relative to the body.
type InputSystem struct {
	config *config.PhysicsConfig

	handTarget mgl64.Vec2
	lastX      int
	lastY      int
	tracking   bool
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Jump    bool
	Hold    bool
	MouseDX int
	MouseDY int
	Restart bool
	Pause   bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	dx, dy := 0, 0
	if s.tracking {
		dx, dy = mx-s.lastX, my-s.lastY
	}
	s.lastX, s.lastY, s.tracking = mx, my, true

	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Hold:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseDX: dx,
		MouseDY: dy,
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Control turns an input state into a body control. maxTarget bounds the
// accumulated shoulder-relative hand target so it can't drift away
// from the arm.
func (s *InputSystem) Control(input InputState, maxTarget float64) entity.BodyControl {
	sensitivity := s.config.Display.MouseSensitivity
	// Screen y grows downward.
	delta := mgl64.Vec2{float64(input.MouseDX), -float64(input.MouseDY)}.Mul(sensitivity)
	s.handTarget = geom.ClampLen(s.handTarget.Add(delta), maxTarget)

	move := 0.0
	if input.Right {
		move += 1
	}
	if input.Left {
		move -= 1
	}

	height := 0.5
	switch {
	case input.Up && !input.Down:
		height = 1
	case input.Down && !input.Up:
		height = 0
	}

	return entity.BodyControl{
		HandTarget:   s.handTarget,
		MoveSpeed:    move,
		TargetHeight: height,
		Hold:         input.Hold,
		Jump:         input.Jump,
	}
}

// HandTarget returns the accumulated hand target
func (s *InputSystem) HandTarget() mgl64.Vec2 {
	return s.handTarget
}

// Reset centers the hand target
func (s *InputSystem) Reset() {
	s.handTarget = mgl64.Vec2{}
}
