package sprite

import (
	"sort"
	"time"
)

// AnimatedSprite is a sprite whose region is driven by
// one of its named animations.
type AnimatedSprite struct {
	Sprite

	animation  *Animation
	name       string
	frame      int
	elapsed    time.Duration
	animations map[string]*Animation
}

// NewAnimatedSprite creates a new animated sprite
// with no animations.
func NewAnimatedSprite() *AnimatedSprite {
	return &AnimatedSprite{
		animations: map[string]*Animation{},
	}
}

// NewAnimatedSpriteWith creates a new animated sprite
// playing the animation.
func NewAnimatedSpriteWith(anim *Animation) (*AnimatedSprite, error) {
	if err := anim.Validate(); err != nil {
		return nil, err
	}

	s := NewAnimatedSprite()
	s.start(anim)

	return s, nil
}

// AddAnimation registers the animation under the name,
// replacing any animation with the same name.
func (s *AnimatedSprite) AddAnimation(name string, anim *Animation) error {
	if err := anim.Validate(); err != nil {
		return err
	}

	if s.animations == nil {
		s.animations = map[string]*Animation{}
	}

	s.animations[name] = anim

	return nil
}

// HasAnimation reports whether an animation
// is registered under the name.
func (s *AnimatedSprite) HasAnimation(name string) bool {
	_, ok := s.animations[name]
	return ok
}

// Animations returns the registered names in sorted order.
func (s *AnimatedSprite) Animations() []string {
	names := make([]string, 0, len(s.animations))

	for name := range s.animations {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// SetAnimation switches to the animation registered under the name.
// It returns false if there is no such animation or if it is already
// playing, in which case its frame and elapsed time are kept.
func (s *AnimatedSprite) SetAnimation(name string) bool {
	anim, ok := s.animations[name]

	if !ok {
		return false
	}

	if anim == s.animation {
		return false
	}

	s.start(anim)
	s.name = name

	return true
}

// Play starts the animation from its first frame without
// looking it up by name. A nil animation stops playback
// and leaves the last region in place.
func (s *AnimatedSprite) Play(anim *Animation) error {
	if anim != nil {
		if err := anim.Validate(); err != nil {
			return err
		}
	}

	s.start(anim)

	return nil
}

// start resets playback. The texture ID always follows
// the animation so the region is never paired with
// a previous atlas.
func (s *AnimatedSprite) start(anim *Animation) {
	s.animation = anim
	s.name = ""
	s.frame = 0
	s.elapsed = 0

	if anim == nil {
		return
	}

	s.Region = anim.Frames[0]
	s.TextureID = anim.TextureID
}

// Animation returns the current animation or nil.
func (s *AnimatedSprite) Animation() *Animation {
	return s.animation
}

// CurrentAnimationName returns the name of the current animation.
// It is empty if the animation was set with Play.
func (s *AnimatedSprite) CurrentAnimationName() string {
	return s.name
}

// Frame returns the index of the frame being shown.
func (s *AnimatedSprite) Frame() int {
	return s.frame
}

// Elapsed returns the time accumulated towards the next frame.
func (s *AnimatedSprite) Elapsed() time.Duration {
	return s.elapsed
}

// Update advances the animation by the time elapsed since the
// previous tick. At most one frame is advanced per call.
func (s *AnimatedSprite) Update(elapsed time.Duration) {
	if s.animation == nil {
		return
	}

	if elapsed > 0 {
		s.elapsed += elapsed
	}

	if s.elapsed < s.animation.Delay {
		return
	}

	s.elapsed -= s.animation.Delay
	s.frame++

	if s.frame >= len(s.animation.Frames) {
		s.frame = 0
	}

	s.Region = s.animation.Frames[s.frame]
}
