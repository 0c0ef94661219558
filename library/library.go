// Package library stores sprite animations in an
// alacrity resource file.
package library

import (
	"errors"
	"fmt"

	"github.com/alacrity-engine/animation/sprite"
	bolt "go.etcd.io/bbolt"
)

// AnimationsBucket is the resource file bucket
// holding packed animations.
const AnimationsBucket = "animations"

// ErrNotFound is returned when an animation
// is absent from the resource file.
var ErrNotFound = errors.New("animation not found")

// Put stores the animation under the name
// within the transaction.
func Put(tx *bolt.Tx, name string, anim *sprite.Animation) error {
	data, err := anim.Data()

	if err != nil {
		return fmt.Errorf("animation '%s': %w", name, err)
	}

	animBytes, err := data.ToBytes()

	if err != nil {
		return fmt.Errorf("encode animation '%s': %w", name, err)
	}

	buck, err := tx.CreateBucketIfNotExists([]byte(AnimationsBucket))

	if err != nil {
		return err
	}

	return buck.Put([]byte(name), animBytes)
}

// Save stores the animation under the name.
func Save(db *bolt.DB, name string, anim *sprite.Animation) error {
	return db.Update(func(tx *bolt.Tx) error {
		return Put(tx, name, anim)
	})
}

// Get reads the animation stored under the name
// within the transaction.
func Get(tx *bolt.Tx, name string) (*sprite.Animation, error) {
	buck := tx.Bucket([]byte(AnimationsBucket))

	if buck == nil {
		return nil, fmt.Errorf("the %s bucket not found: %w",
			AnimationsBucket, ErrNotFound)
	}

	animBytes := buck.Get([]byte(name))

	if animBytes == nil {
		return nil, fmt.Errorf("animation '%s': %w", name, ErrNotFound)
	}

	return decode(name, animBytes)
}

// Load reads the animation stored under the name.
func Load(db *bolt.DB, name string) (*sprite.Animation, error) {
	var anim *sprite.Animation

	err := db.View(func(tx *bolt.Tx) error {
		var err error
		anim, err = Get(tx, name)

		return err
	})

	if err != nil {
		return nil, err
	}

	return anim, nil
}

// LoadAll reads every animation in the resource file.
// A file without the animations bucket yields an empty map.
func LoadAll(db *bolt.DB) (map[string]*sprite.Animation, error) {
	anims := map[string]*sprite.Animation{}

	err := db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(AnimationsBucket))

		if buck == nil {
			return nil
		}

		return buck.ForEach(func(k, v []byte) error {
			anim, err := decode(string(k), v)

			if err != nil {
				return err
			}

			anims[string(k)] = anim

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return anims, nil
}

// Populate registers the named animations on the sprite.
// If no names are given, every stored animation is registered.
func Populate(db *bolt.DB, s *sprite.AnimatedSprite, names ...string) error {
	if len(names) == 0 {
		anims, err := LoadAll(db)

		if err != nil {
			return err
		}

		for name, anim := range anims {
			if err := s.AddAnimation(name, anim); err != nil {
				return fmt.Errorf("animation '%s': %w", name, err)
			}
		}

		return nil
	}

	return db.View(func(tx *bolt.Tx) error {
		for _, name := range names {
			anim, err := Get(tx, name)

			if err != nil {
				return err
			}

			if err := s.AddAnimation(name, anim); err != nil {
				return fmt.Errorf("animation '%s': %w", name, err)
			}
		}

		return nil
	})
}

func decode(name string, animBytes []byte) (*sprite.Animation, error) {
	anim, err := sprite.DecodeAnimation(animBytes)

	if err != nil {
		return nil, fmt.Errorf("animation '%s': %w", name, err)
	}

	return anim, nil
}
