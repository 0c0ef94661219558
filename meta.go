package main

import (
	"fmt"

	"github.com/alacrity-engine/core/math/geometry"
	"gopkg.in/yaml.v2"
)

// AnimationMeta is animation metadata
// read from the YAML file.
type AnimationMeta struct {
	Name          string `yaml:"name"`
	Tag           string `yaml:"tag"`
	TextureID     string `yaml:"textureID"`
	SpritesheetID string `yaml:"spritesheetID"`
	// Frames are indices into the spritesheet frames.
	Frames []int `yaml:"frames"`
	// Delay is the time each frame is shown, in milliseconds.
	Delay int `yaml:"delay"`
}

// ReadAnimationsData parses and validates
// the animations metadata.
func ReadAnimationsData(contents []byte) ([]AnimationMeta, error) {
	var animationsMeta []AnimationMeta
	err := yaml.UnmarshalStrict(contents, &animationsMeta)

	if err != nil {
		return nil, err
	}

	names := map[string]struct{}{}

	for i, animMeta := range animationsMeta {
		if animMeta.Name == "" {
			return nil, fmt.Errorf("animation #%d has no name", i)
		}

		if _, ok := names[animMeta.Name]; ok {
			return nil, fmt.Errorf(
				"animation '%s' is declared twice", animMeta.Name)
		}

		names[animMeta.Name] = struct{}{}

		if len(animMeta.Frames) == 0 {
			return nil, fmt.Errorf(
				"animation '%s' has no frames", animMeta.Name)
		}

		if animMeta.Delay <= 0 {
			return nil, fmt.Errorf(
				"animation '%s' has non-positive delay %d", animMeta.Name, animMeta.Delay)
		}
	}

	return animationsMeta, nil
}

// groupTags maps each tag to the names
// of the animations carrying it.
func groupTags(animationsMeta []AnimationMeta) map[string][]string {
	animTags := map[string][]string{}

	for _, animMeta := range animationsMeta {
		if animMeta.Tag == "" {
			continue
		}

		animTags[animMeta.Tag] = append(animTags[animMeta.Tag],
			animMeta.Name)
	}

	return animTags
}

// selectFrames picks the animation frames
// out of the spritesheet frames.
func selectFrames(animMeta AnimationMeta, frames []geometry.Rect) ([]geometry.Rect, error) {
	selected := make([]geometry.Rect, 0, len(animMeta.Frames))

	for _, idx := range animMeta.Frames {
		if idx < 0 || idx >= len(frames) {
			return nil, fmt.Errorf(
				"animation '%s': frame %d is out of range [0, %d)",
				animMeta.Name, idx, len(frames))
		}

		selected = append(selected, frames[idx])
	}

	return selected, nil
}
