package main

import (
	"flag"
	"fmt"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	"github.com/alacrity-engine/animation/library"
	"github.com/alacrity-engine/animation/sprite"
	"github.com/alacrity-engine/core/math/geometry"
	codec "github.com/alacrity-engine/resource-codec"
	bolt "go.etcd.io/bbolt"
)

var (
	animationsIndexPath string
	resourceFilePath    string
	logLevel            string
)

var logger = slog.Default()

// frameSource resolves the spritesheet frames
// an animation picks its frames from.
type frameSource func(tx *bolt.Tx, animationMeta AnimationMeta) ([]geometry.Rect, error)

func parseFlags() {
	flag.StringVar(&animationsIndexPath, "animations-meta", "./animations-meta.yml",
		"Path to the file where animation descriptions are stored.")
	flag.StringVar(&resourceFilePath, "out", "./stage.res",
		"Resource file to store animations in.")
	flag.StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn or error.")

	flag.Parse()
}

func main() {
	parseFlags()

	level, err := parseLogLevel(logLevel)
	handleError(err)
	logger = slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))

	// Open the resource file.
	resourceFile, err := bolt.Open(resourceFilePath, 0666, nil)
	handleError(err)
	defer resourceFile.Close()

	// Read animations data.
	contents, err := os.ReadFile(animationsIndexPath)
	handleError(err)
	animationsMeta, err := ReadAnimationsData(contents)
	handleError(err)

	// Save everything in one transaction
	// so a failure leaves the file untouched.
	animTags := groupTags(animationsMeta)
	err = resourceFile.Update(func(tx *bolt.Tx) error {
		return packAll(tx, animationsMeta, animTags, spritesheetFrames)
	})

	if err != nil {
		resourceFile.Close()
		handleError(err)
	}

	logger.Info("resource file updated",
		"path", resourceFilePath,
		"animations", len(animationsMeta),
		"tags", len(animTags))
}

// packAll stores every animation and tag.
func packAll(tx *bolt.Tx, animationsMeta []AnimationMeta,
	animTags map[string][]string, frames frameSource) error {
	for _, animationMeta := range animationsMeta {
		sheetFrames, err := frames(tx, animationMeta)

		if err != nil {
			return err
		}

		err = packAnimation(tx, animationMeta, sheetFrames)

		if err != nil {
			return err
		}

		logger.Debug("animation packed",
			"name", animationMeta.Name,
			"frames", len(animationMeta.Frames),
			"delay_ms", animationMeta.Delay)
	}

	for tagID, tag := range animTags {
		err := putTag(tx, tagID, tag)

		if err != nil {
			return err
		}
	}

	return nil
}

// spritesheetFrames slices the spritesheet picture
// of the animation into frames.
func spritesheetFrames(tx *bolt.Tx, animationMeta AnimationMeta) ([]geometry.Rect, error) {
	buck := tx.Bucket([]byte("spritesheets"))

	if buck == nil {
		return nil, fmt.Errorf("the spritesheets bucket not found")
	}

	ssBytes := buck.Get([]byte(animationMeta.SpritesheetID))

	if ssBytes == nil {
		return nil, fmt.Errorf(
			"spritesheet '%s' not found", animationMeta.SpritesheetID)
	}

	ss, err := codec.SpritesheetDataFromBytes(ssBytes)

	if err != nil {
		return nil, err
	}

	textureBuck := tx.Bucket([]byte("textures"))

	if textureBuck == nil {
		return nil, fmt.Errorf("the textures bucket not found")
	}

	textureBytes := textureBuck.Get([]byte(animationMeta.TextureID))

	if textureBytes == nil {
		return nil, fmt.Errorf(
			"texture '%s' not found", animationMeta.TextureID)
	}

	texture, err := codec.TextureDataFromBytes(textureBytes)

	if err != nil {
		return nil, err
	}

	picBucket := tx.Bucket([]byte("pictures"))

	if picBucket == nil {
		return nil, fmt.Errorf("the pictures bucket not found")
	}

	picBytes := picBucket.Get([]byte(texture.PictureID))

	if picBytes == nil {
		return nil, fmt.Errorf(
			"picture '%s' not found", texture.PictureID)
	}

	compressedPic, err := codec.CompressedPictureFromBytes(picBytes)

	if err != nil {
		return nil, err
	}

	return compressedPic.GetSpritesheetFrames(
		int(ss.Width), int(ss.Height)), nil
}

// packAnimation assembles the animation out of the
// spritesheet frames and stores it in the resource file.
func packAnimation(tx *bolt.Tx, animationMeta AnimationMeta, sheetFrames []geometry.Rect) error {
	frames, err := selectFrames(animationMeta, sheetFrames)

	if err != nil {
		return err
	}

	anim, err := sprite.NewAnimation(frames,
		time.Duration(animationMeta.Delay)*time.Millisecond)

	if err != nil {
		return fmt.Errorf("animation '%s': %w", animationMeta.Name, err)
	}

	anim.TextureID = animationMeta.TextureID

	return library.Put(tx, animationMeta.Name, anim)
}

func putTag(tx *bolt.Tx, tagID string, tag []string) error {
	buck := tx.Bucket([]byte("tags"))

	if buck == nil {
		return fmt.Errorf("no tags bucket present")
	}

	tagData, err := codec.EncodeTag(tag)

	if err != nil {
		return err
	}

	return buck.Put([]byte(tagID), tagData)
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(raw))

	if err != nil {
		return 0, fmt.Errorf("parse log level '%s': %w", raw, err)
	}

	return level, nil
}

func handleError(err error) {
	if err != nil {
		logger.Error("packing failed", "error", err)
		os.Exit(1)
	}
}
