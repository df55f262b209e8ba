// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/climb/internal/application/replay"
	"github.com/younwookim/climb/internal/application/scene"
	"github.com/younwookim/climb/internal/application/state"
	"github.com/younwookim/climb/internal/application/system"
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSurface  = color.RGBA{80, 80, 100, 255}
	colorGround   = color.RGBA{120, 160, 120, 255}
	colorBody     = color.RGBA{100, 200, 100, 255}
	colorArm      = color.RGBA{200, 200, 100, 255}
	colorHand     = color.RGBA{255, 215, 0, 255}
	colorHold     = color.RGBA{200, 50, 50, 255}
	colorTarget   = color.RGBA{100, 100, 200, 160}
	colorBest     = color.RGBA{255, 255, 255, 60}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
	surfaceStroke = float32(2)
)

// Options configures a Playing scene
type Options struct {
	// RecordPath enables recording of every control when not empty.
	RecordPath string
	// Seed is stored with the recording for generated levels.
	Seed int64
	// Replay plays a recording back instead of reading the input devices.
	Replay *replay.ReplayData
	Logger *zap.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	session     *system.Session
	inputSystem *system.InputSystem
	state       state.GameState
	resume      state.GameState
	screenW     int
	screenH     int
	ppu         float64
	dt          float64
	logger      *zap.Logger

	last system.StepResult

	// Input recording and playback
	recorder       *replay.Recorder
	recordFilename string
	seed           int64
	replayer       *replay.Replayer
}

// New creates a new Playing scene on level
func New(cfg *config.GameConfig, level *entity.Level, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	display := cfg.Physics.Display

	p := &Playing{
		config:         cfg,
		session:        system.NewSession(cfg.Physics, level, logger),
		inputSystem:    system.NewInputSystem(cfg.Physics),
		state:          state.StatePlaying,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		ppu:            display.PixelsPerUnit,
		dt:             cfg.Physics.DT(),
		logger:         logger.Named("playing"),
		recordFilename: opts.RecordPath,
		seed:           opts.Seed,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.dt = opts.Replay.DT
		p.state = state.StateReplaying
		p.logger.Info("Replaying",
			zap.Stringer("id", opts.Replay.ID),
			zap.Int("frames", p.replayer.TotalFrames()))
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(level.ID, opts.Seed, p.dt)
		p.logger.Info("Recording enabled", zap.String("path", opts.RecordPath))
	}

	return p
}

// Session returns the simulated session
func (p *Playing) Session() *system.Session {
	return p.session
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(p.inputSystem.GetInput())
	case state.StateReplaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.pause()
			break
		}
		p.updateReplaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.resume
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(input system.InputState) {
	if input.Pause {
		p.pause()
		return
	}
	if input.Restart {
		p.restart()
		return
	}

	maxTarget := p.session.Body.MaxReach() * p.config.Physics.Arm.ControlOverreach
	control := p.inputSystem.Control(input, maxTarget)

	if p.recorder != nil {
		p.recorder.RecordFrame(control)
	}

	p.step(control)
}

func (p *Playing) updateReplaying() {
	control, ok := p.replayer.GetInput()
	if !ok {
		p.logger.Info("Replay finished",
			zap.Int("frames", p.replayer.TotalFrames()),
			zap.Float64("bestHeight", p.session.BestHeight))
		p.state = state.StatePaused
		p.resume = state.StatePaused
		return
	}
	p.step(control)
}

func (p *Playing) step(control entity.BodyControl) {
	p.last = p.session.Step(control, p.dt)
	for _, e := range p.last.Events {
		switch e := e.(type) {
		case system.GrabEvent:
			p.logger.Debug("Grab", zap.Int("surface", e.Surface), zap.Int("frame", p.session.Frame))
		case system.ReleaseEvent:
			p.logger.Debug("Grip failed", zap.Int("frame", p.session.Frame))
		}
	}
}

func (p *Playing) pause() {
	p.resume = p.state
	p.state = state.StatePaused
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("Failed to save recording", zap.Error(err))
		return
	}
	p.logger.Info("Recording saved",
		zap.String("path", filename),
		zap.Int("frames", p.recorder.FrameCount()))
}

func (p *Playing) restart() {
	p.session.Reset()
	p.inputSystem.Reset()
	p.last = system.StepResult{}

	// A recording covers a single attempt.
	if p.recorder != nil {
		p.saveRecording()
		p.recorder = replay.NewRecorder(p.session.Level.ID, p.seed, p.dt)
		p.logger.Info("Recording restarted")
	}
}

// camera returns the world point at the screen center
func (p *Playing) camera() mgl64.Vec2 {
	pos := p.session.Body.Center.Position
	return mgl64.Vec2{pos[0], pos[1] + p.config.Physics.Body.Height/2}
}

// toScreen converts a world point into screen pixels. Screen y grows downward.
func (p *Playing) toScreen(cam, v mgl64.Vec2) (float32, float32) {
	d := v.Sub(cam).Mul(p.ppu)
	return float32(float64(p.screenW)/2 + d[0]), float32(float64(p.screenH)/2 - d[1])
}

func (p *Playing) line(screen *ebiten.Image, cam, a, b mgl64.Vec2, width float32, c color.Color) {
	x0, y0 := p.toScreen(cam, a)
	x1, y1 := p.toScreen(cam, b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cam := p.camera()

	p.drawBestHeight(screen, cam)
	p.drawSurfaces(screen, cam)
	p.drawBody(screen, cam)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawBestHeight(screen *ebiten.Image, cam mgl64.Vec2) {
	_, y := p.toScreen(cam, mgl64.Vec2{0, p.session.BestHeight})
	vector.StrokeLine(screen, 0, y, float32(p.screenW), y, 1, colorBest, false)
}

func (p *Playing) drawSurfaces(screen *ebiten.Image, cam mgl64.Vec2) {
	ground := p.session.Body.GroundSurface
	for i, s := range p.session.Level.Surfaces {
		c := colorSurface
		if i == ground {
			c = colorGround
		}
		p.line(screen, cam, s.P1, s.P2, surfaceStroke, c)
	}
}

func (p *Playing) drawBody(screen *ebiten.Image, cam mgl64.Vec2) {
	body := p.session.Body
	params := body.Params()

	// Box collider, origin at the feet.
	x, y := p.toScreen(cam, body.Center.Position.Add(mgl64.Vec2{-params.Width / 2, params.Height}))
	w := float32(params.Width * p.ppu)
	h := float32(params.Height * p.ppu)
	vector.StrokeRect(screen, x, y, w, h, 2, colorBody, false)

	skeleton := body.Skeleton()
	shoulder, elbow, hand := skeleton[0], skeleton[1], skeleton[2]
	p.line(screen, cam, shoulder.Position, elbow.Position, 3, colorArm)
	p.line(screen, cam, elbow.Position, hand.Position, 3, colorArm)

	hx, hy := p.toScreen(cam, hand.Position)
	vector.StrokeCircle(screen, hx, hy, float32(hand.Radius*p.ppu), 2, colorHand, true)

	if body.HoldingTo != nil {
		ax, ay := p.toScreen(cam, *body.HoldingTo)
		vector.DrawFilledCircle(screen, ax, ay, 4, colorHold, true)
	}

	if p.state != state.StateReplaying {
		target := body.Center.Position.Add(body.Arm.Shoulder.Position).Add(p.inputSystem.HandTarget())
		tx, ty := p.toScreen(cam, target)
		vector.StrokeCircle(screen, tx, ty, 5, 1, colorTarget, true)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	body := p.session.Body
	text := fmt.Sprintf("%s  x:%.2f y:%.2f  speed:%.2f  best:%.2f  frame:%d",
		body.State, body.Center.Position[0], body.Center.Position[1],
		p.last.SpeedMultiplier, p.session.BestHeight, p.session.Frame)
	if body.IsHolding() {
		text += "  HOLD"
	}
	if p.recorder != nil {
		text += fmt.Sprintf("  REC %d", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		text += fmt.Sprintf("  REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED - ESC to resume", p.screenW/2-70, p.screenH/2-10)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves a pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the logical screen size
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
