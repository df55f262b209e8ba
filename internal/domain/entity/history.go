package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RunningParams tunes the rhythm-based speed model.
type RunningParams struct {
	RecordLength       float64 // seconds of history kept
	MaxAmplitude       float64 // normalized hand offset that counts as a full swing
	ReferenceFrequency float64 // swings per second that count as full rhythm
	WalkingSpeed       float64
	MaxRunningSpeed    float64
	MinDuration        float64 // floor for the analysed time span
}

// MovementSample is one recorded hand offset, normalized by the arm reach.
type MovementSample struct {
	Time float64
	Hand mgl64.Vec2
}

// MovementInfo is the result of analysing the recorded swings.
type MovementInfo struct {
	Frequency float64 // swings per second
	Amplitude float64 // average peak of a swing
	Swings    int
	Hand      mgl64.Vec2 // latest sample
}

// MovementStats are the locomotion values derived from a MovementInfo.
type MovementStats struct {
	MoveSpeed float64
	Factor    float64 // skill factor in [0, 1]
}

// MovementHistory keeps the hand samples of the trailing RecordLength seconds.
type MovementHistory struct {
	Time float64

	params  RunningParams
	samples ring[MovementSample]
}

// NewMovementHistory creates an empty history.
func NewMovementHistory(params RunningParams) MovementHistory {
	return MovementHistory{params: params}
}

// Params returns the speed model tuning.
func (h *MovementHistory) Params() RunningParams {
	return h.params
}

// Update advances the clock by dt, records hand and evicts samples that fell
// out of the window.
func (h *MovementHistory) Update(hand mgl64.Vec2, dt float64) {
	h.Time += dt
	limit := h.Time - h.params.RecordLength
	for h.samples.Len() > 0 && h.samples.Front().Time < limit {
		h.samples.PopFront()
	}
	h.samples.PushBack(MovementSample{Time: h.Time, Hand: hand})
}

// Len returns the number of retained samples.
func (h *MovementHistory) Len() int {
	return h.samples.Len()
}

// Samples returns a copy of the retained samples, oldest first.
func (h *MovementHistory) Samples() []MovementSample {
	out := make([]MovementSample, h.samples.Len())
	for i := range out {
		out[i] = h.samples.At(i)
	}
	return out
}

// Reset drops all samples and rewinds the clock.
func (h *MovementHistory) Reset() {
	h.Time = 0
	h.samples = ring[MovementSample]{}
}

// Analyze walks the samples in time order and measures the lateral swings of
// the hand. A swing is closed by every change of side of the horizontal
// offset and contributes its peak absolute offset. A zero offset keeps the
// current side.
func (h *MovementHistory) Analyze() MovementInfo {
	var (
		info  MovementInfo
		side  float64
		peak  float64
		total float64
	)

	n := h.samples.Len()
	for i := 0; i < n; i++ {
		s := h.samples.At(i)
		x := s.Hand[0]
		amp := math.Abs(x)

		current := 0.0
		if x > 0 {
			current = 1
		} else if x < 0 {
			current = -1
		}

		switch {
		case current == 0:
		case side == 0:
			side = current
		case current != side:
			total += peak
			info.Swings++
			side = current
			peak = 0
		}
		peak = math.Max(peak, amp)
	}

	if n > 0 {
		span := h.samples.At(n-1).Time - h.samples.Front().Time
		info.Frequency = float64(info.Swings) / math.Max(span, h.params.MinDuration)
		info.Hand = h.samples.At(n - 1).Hand
	}
	info.Amplitude = total / float64(max(info.Swings, 1))
	return info
}

// CalcStats turns the swing measurements into a movement speed between the
// walking and the maximum running speed.
func (i MovementInfo) CalcStats(p RunningParams) MovementStats {
	frequency := 0.0
	if p.ReferenceFrequency > 0 {
		frequency = math.Min(i.Frequency/p.ReferenceFrequency, 1)
	}
	amplitude := 0.0
	if p.MaxAmplitude > 0 {
		amplitude = mgl64.Clamp(i.Amplitude, 0, p.MaxAmplitude) / p.MaxAmplitude
	}

	factor := mgl64.Clamp(frequency*amplitude, 0, 1)
	return MovementStats{
		MoveSpeed: p.WalkingSpeed + (p.MaxRunningSpeed-p.WalkingSpeed)*factor,
		Factor:    factor,
	}
}

// ring is a growable double-ended queue backed by a circular slice.
type ring[T any] struct {
	buf  []T
	head int
	n    int
}

func (r *ring[T]) Len() int { return r.n }

func (r *ring[T]) At(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring[T]) Front() T { return r.At(0) }

func (r *ring[T]) PushBack(v T) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
}

func (r *ring[T]) PopFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v
}

func (r *ring[T]) grow() {
	size := 2 * len(r.buf)
	if size == 0 {
		size = 64
	}
	buf := make([]T, size)
	for i := 0; i < r.n; i++ {
		buf[i] = r.At(i)
	}
	r.buf = buf
	r.head = 0
}
