package library_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alacrity-engine/animation/library"
	"github.com/alacrity-engine/animation/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openDB(t *testing.T) *bolt.DB {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "stage.res"), 0666, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func animation(t *testing.T, textureID string, n int) *sprite.Animation {
	t.Helper()

	anim, err := sprite.NewAnimation(sprite.Grid(n, 1, 32, 32), 120*time.Millisecond)
	require.NoError(t, err)
	anim.TextureID = textureID

	return anim
}

func TestSaveLoad(t *testing.T) {
	db := openDB(t)
	walk := animation(t, "hero", 4)

	require.NoError(t, library.Save(db, "walk", walk))

	loaded, err := library.Load(db, "walk")
	require.NoError(t, err)
	assert.Equal(t, walk, loaded)
}

func TestLoadMissing(t *testing.T) {
	db := openDB(t)

	_, err := library.Load(db, "walk")
	assert.ErrorIs(t, err, library.ErrNotFound)

	require.NoError(t, library.Save(db, "idle", animation(t, "hero", 2)))

	_, err = library.Load(db, "walk")
	assert.ErrorIs(t, err, library.ErrNotFound)
}

func TestLoadAll(t *testing.T) {
	db := openDB(t)

	anims, err := library.LoadAll(db)
	require.NoError(t, err)
	assert.Empty(t, anims)

	require.NoError(t, library.Save(db, "walk", animation(t, "hero", 4)))
	require.NoError(t, library.Save(db, "idle", animation(t, "hero", 2)))

	anims, err = library.LoadAll(db)
	require.NoError(t, err)
	assert.Len(t, anims, 2)
	assert.Equal(t, 4, anims["walk"].Len())
	assert.Equal(t, 2, anims["idle"].Len())
}

func TestPopulate(t *testing.T) {
	db := openDB(t)
	require.NoError(t, library.Save(db, "walk", animation(t, "hero", 4)))
	require.NoError(t, library.Save(db, "idle", animation(t, "hero", 2)))
	require.NoError(t, library.Save(db, "spin", animation(t, "coin", 6)))

	s := sprite.NewAnimatedSprite()
	require.NoError(t, library.Populate(db, s, "walk", "idle"))
	assert.Equal(t, []string{"idle", "walk"}, s.Animations())

	require.True(t, s.SetAnimation("walk"))
	assert.Equal(t, "hero", s.TextureID)

	all := sprite.NewAnimatedSprite()
	require.NoError(t, library.Populate(db, all))
	assert.Equal(t, []string{"idle", "spin", "walk"}, all.Animations())

	err := library.Populate(db, sprite.NewAnimatedSprite(), "jump")
	assert.ErrorIs(t, err, library.ErrNotFound)
}

func TestSaveRejectsSubMillisecondDelay(t *testing.T) {
	db := openDB(t)
	require.NoError(t, library.Save(db, "walk", animation(t, "hero", 4)))

	fast, err := sprite.NewAnimation(sprite.Grid(2, 1, 32, 32), 500*time.Microsecond)
	require.NoError(t, err)

	err = library.Save(db, "flicker", fast)
	assert.ErrorIs(t, err, sprite.ErrDelayPrecision)

	_, err = library.Load(db, "flicker")
	assert.ErrorIs(t, err, library.ErrNotFound)

	s := sprite.NewAnimatedSprite()
	require.NoError(t, library.Populate(db, s))
	assert.Equal(t, []string{"walk"}, s.Animations())
}
