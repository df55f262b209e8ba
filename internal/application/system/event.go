package system

import "github.com/younwookim/climb/internal/domain/entity"

// Event is something that happened to the body during a step
type Event interface {
	isEvent()
}

// GrabEvent: the hand anchored to a surface
type GrabEvent struct {
	Surface int
}

func (GrabEvent) isEvent() {}

// LetGoEvent: the hold input was released while anchored
type LetGoEvent struct{}

func (LetGoEvent) isEvent() {}

// ReleaseEvent: the grip failed because the hold force budget ran out
type ReleaseEvent struct{}

func (ReleaseEvent) isEvent() {}

// JumpEvent: the body jumped off the ground
type JumpEvent struct {
	Velocity float64 // vertical take-off speed
}

func (JumpEvent) isEvent() {}

// StateChangeEvent: the ground state changed
type StateChangeEvent struct {
	From, To entity.MovementState
}

func (StateChangeEvent) isEvent() {}

// StepResult reports the outcome of one simulation step
type StepResult struct {
	State           entity.MovementState
	GroundSurface   int // -1 when airborne
	SpeedMultiplier float64
	Events          []Event
}

// Grabbed returns true if the hand anchored during the step
func (r StepResult) Grabbed() bool {
	for _, e := range r.Events {
		if _, ok := e.(GrabEvent); ok {
			return true
		}
	}
	return false
}

// Released returns true if the grip failed during the step
func (r StepResult) Released() bool {
	for _, e := range r.Events {
		if _, ok := e.(ReleaseEvent); ok {
			return true
		}
	}
	return false
}
