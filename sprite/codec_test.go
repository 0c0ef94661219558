package sprite_test

import (
	"testing"
	"time"

	"github.com/alacrity-engine/animation/sprite"
	codec "github.com/alacrity-engine/resource-codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationData(t *testing.T) {
	anim := newAnimation(t, 3, 80*time.Millisecond)
	anim.TextureID = "hero"

	data, err := anim.Data()
	require.NoError(t, err)
	assert.Equal(t, "hero", data.TextureID)
	assert.Equal(t, anim.Frames, data.Frames)
	assert.Equal(t, []int32{80, 80, 80}, data.Durations)

	back, err := sprite.FromData(data)
	require.NoError(t, err)
	assert.Equal(t, anim, back)

	animBytes, err := data.ToBytes()
	require.NoError(t, err)

	decoded, err := sprite.DecodeAnimation(animBytes)
	require.NoError(t, err)
	assert.Equal(t, anim, decoded)
}

func TestAnimationDataRejectsSubMillisecondDelays(t *testing.T) {
	for _, delay := range []time.Duration{
		500 * time.Microsecond,
		16666667 * time.Nanosecond,
	} {
		anim := newAnimation(t, 2, delay)

		_, err := anim.Data()
		assert.ErrorIs(t, err, sprite.ErrDelayPrecision, delay.String())
	}

	_, err := (&sprite.Animation{}).Data()
	assert.ErrorIs(t, err, sprite.ErrNoFrames)
}

func TestFromDataRejects(t *testing.T) {
	_, err := sprite.FromData(&codec.AnimationData{})
	assert.ErrorIs(t, err, sprite.ErrNoFrames)

	_, err = sprite.FromData(&codec.AnimationData{
		Frames:    sprite.Grid(2, 1, 8, 8),
		Durations: []int32{100, 120},
	})
	assert.ErrorIs(t, err, sprite.ErrNonUniformDurations)

	_, err = sprite.FromData(&codec.AnimationData{
		Frames:    sprite.Grid(2, 1, 8, 8),
		Durations: []int32{100},
	})
	assert.Error(t, err)

	_, err = sprite.FromData(&codec.AnimationData{
		Frames:    sprite.Grid(1, 1, 8, 8),
		Durations: []int32{0},
	})
	assert.ErrorIs(t, err, sprite.ErrInvalidDelay)
}
