package sprite

import (
	"errors"
	"time"

	"github.com/alacrity-engine/core/math/geometry"
)

var (
	// ErrNilAnimation is returned when a nil animation is registered.
	ErrNilAnimation = errors.New("animation is nil")
	// ErrNoFrames is returned when an animation has no frames.
	ErrNoFrames = errors.New("animation has no frames")
	// ErrInvalidDelay is returned when the frame delay is not positive.
	ErrInvalidDelay = errors.New("animation delay must be positive")
)

// Animation is an ordered sequence of texture
// regions shown for a fixed delay each.
type Animation struct {
	TextureID string
	Frames    []geometry.Rect
	Delay     time.Duration
}

// NewAnimation creates a new animation out of the frames.
// The frames slice is copied.
func NewAnimation(frames []geometry.Rect, delay time.Duration) (*Animation, error) {
	anim := &Animation{
		Frames: append([]geometry.Rect(nil), frames...),
		Delay:  delay,
	}

	if err := anim.Validate(); err != nil {
		return nil, err
	}

	return anim, nil
}

// Validate checks the animation can be played.
func (anim *Animation) Validate() error {
	if anim == nil {
		return ErrNilAnimation
	}

	if len(anim.Frames) == 0 {
		return ErrNoFrames
	}

	if anim.Delay <= 0 {
		return ErrInvalidDelay
	}

	return nil
}

// Len returns the number of frames.
func (anim *Animation) Len() int {
	return len(anim.Frames)
}

// Duration returns the time a full cycle takes.
func (anim *Animation) Duration() time.Duration {
	return anim.Delay * time.Duration(len(anim.Frames))
}
