package sprite

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alacrity-engine/core/math/geometry"
	codec "github.com/alacrity-engine/resource-codec"
)

var (
	// ErrNonUniformDurations is returned when packed animation
	// frames don't share the same duration.
	ErrNonUniformDurations = errors.New("frame durations are not uniform")
	// ErrDelayPrecision is returned when the delay can't be
	// packed as a whole number of milliseconds.
	ErrDelayPrecision = errors.New("delay is not a whole number of milliseconds")
)

// FromData converts packed animation data into an animation.
// Durations are in milliseconds.
func FromData(data *codec.AnimationData) (*Animation, error) {
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}

	if len(data.Durations) != len(data.Frames) {
		return nil, fmt.Errorf(
			"%d frames but %d durations", len(data.Frames), len(data.Durations))
	}

	ms := data.Durations[0]

	for i, d := range data.Durations {
		if d != ms {
			return nil, fmt.Errorf("frame %d lasts %dms, frame 0 lasts %dms: %w",
				i, d, ms, ErrNonUniformDurations)
		}
	}

	anim, err := NewAnimation(data.Frames, time.Duration(ms)*time.Millisecond)

	if err != nil {
		return nil, err
	}

	anim.TextureID = data.TextureID

	return anim, nil
}

// DecodeAnimation reads an animation packed by the resource codec.
func DecodeAnimation(animBytes []byte) (*Animation, error) {
	data, err := codec.AnimationDataFromBytes(animBytes)

	if err != nil {
		return nil, err
	}

	return FromData(data)
}

// Data converts the animation into its packed form.
// The delay must be a whole number of milliseconds.
func (anim *Animation) Data() (*codec.AnimationData, error) {
	if err := anim.Validate(); err != nil {
		return nil, err
	}

	if anim.Delay%time.Millisecond != 0 {
		return nil, fmt.Errorf("%v: %w", anim.Delay, ErrDelayPrecision)
	}

	if anim.Delay/time.Millisecond > math.MaxInt32 {
		return nil, fmt.Errorf("%v exceeds the packed range: %w",
			anim.Delay, ErrInvalidDelay)
	}

	ms := int32(anim.Delay / time.Millisecond)
	data := &codec.AnimationData{
		TextureID: anim.TextureID,
		Frames:    make([]geometry.Rect, 0, len(anim.Frames)),
		Durations: make([]int32, 0, len(anim.Frames)),
	}

	for _, frame := range anim.Frames {
		data.Frames = append(data.Frames, frame)
		data.Durations = append(data.Durations, ms)
	}

	return data, nil
}
