package sci

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/sci-motion/kernel"
	"github.com/32bitkid/sci-motion/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ kernel.Views = (*Root)(nil)

func le(buf *bytes.Buffer, vs ...interface{}) {
	for _, v := range vs {
		binary.Write(buf, binary.LittleEndian, v)
	}
}

func viewPayload(loops int) []byte {
	var buf bytes.Buffer
	le(&buf, uint16(loops), uint16(0), uint32(0))
	for i := 0; i < loops; i++ {
		le(&buf, uint16(8+2*loops+4*i))
	}
	for i := 0; i < loops; i++ {
		le(&buf, uint16(1), uint16(0))
	}
	return buf.Bytes()
}

type entry struct {
	t       resource.Type
	n       uint16
	payload []byte
}

// writeGame lays out a game directory with every resource stored
// uncompressed in RESOURCE.000.
func writeGame(t *testing.T, entries ...entry) string {
	dir := t.TempDir()

	var vol, index bytes.Buffer
	for _, e := range entries {
		offset := uint32(vol.Len())
		le(&vol, uint16(e.n), uint16(len(e.payload)+4), uint16(len(e.payload)), uint16(0))
		vol.Write(e.payload)
		le(&index, uint16(e.t)<<11|e.n, offset)
	}
	le(&index, uint16(0xFFFF), uint32(0xFFFFFFFF))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "RESOURCE.MAP"), index.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "RESOURCE.000"), vol.Bytes(), 0o644))
	return dir
}

func TestRootLoopCount(t *testing.T) {
	dir := writeGame(t,
		entry{resource.TypePic, 1, []byte{0xFF}},
		entry{resource.TypeView, 12, viewPayload(4)},
		entry{resource.TypeView, 13, viewPayload(2)},
	)
	root := NewSCI0Root(dir)

	n, err := root.LoopCount(12)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = root.LoopCount(13)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Len(t, root.Mapping, 3)
	assert.Equal(t, resource.TypePic, root.Mapping[0].Type())

	_, err = root.LoopCount(14)
	assert.True(t, errors.Is(err, ErrNoView))
}

func TestRootCachesViews(t *testing.T) {
	dir := writeGame(t, entry{resource.TypeView, 3, viewPayload(4)})
	root := NewSCI0Root(dir)

	_, err := root.LoopCount(3)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "RESOURCE.000")))
	n, err := root.LoopCount(3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRootMissingMap(t *testing.T) {
	root := NewSCI01Root(t.TempDir())
	_, err := root.LoopCount(0)
	assert.Error(t, err)
}

func TestRootTruncatedMap(t *testing.T) {
	dir := t.TempDir()
	var index bytes.Buffer
	le(&index, uint16(resource.TypeView)<<11|1, uint32(0))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "RESOURCE.MAP"), index.Bytes(), 0o644))

	assert.Error(t, NewSCI0Root(dir).LoadMapping())
}

func TestRootReloadsAfterBadMap(t *testing.T) {
	dir := writeGame(t, entry{resource.TypeView, 3, viewPayload(4)})
	mapPath := filepath.Join(dir, "RESOURCE.MAP")
	good, err := os.ReadFile(mapPath)
	require.NoError(t, err)

	// the view entry without the end marker
	require.NoError(t, os.WriteFile(mapPath, good[:6], 0o644))
	root := NewSCI0Root(dir)
	for i := 0; i < 2; i++ {
		_, err := root.LoopCount(3)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNoView))
		assert.Empty(t, root.Mapping)
	}

	require.NoError(t, os.WriteFile(mapPath, good, 0o644))
	n, err := root.LoopCount(3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
