// Package sci connects the motion kernel to the assets of a SCI game.
//
// The Sierra Creative Interpreter (SCI) drove Sierra On-Line's adventure
// games from 1988 on. Actors in those games are moved by script objects
// (movers, avoiders, jumps) that hand the arithmetic to interpreter kernel
// calls; package kernel implements those calls. The kernel needs one thing
// from the game's resources, the number of loops in a view, and Root
// provides it straight from a game directory.
package sci

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/32bitkid/sci-motion/resource"
)

var ErrNoView = errors.New("view not found")

// Root is a reference to the directory of a SCI0 game.
type Root struct {
	Decompressors resource.DecompressorLUT
	Path          string
	Mapping       []resource.Mapping

	views map[resource.Number]*viewEntry
}

type viewEntry struct {
	resource.ViewMapping
	loops int
}

func NewSCI0Root(path string) *Root {
	return &Root{
		Path:          path,
		Decompressors: resource.Decompressors.SCI0,
	}
}

func NewSCI01Root(path string) *Root {
	return &Root{
		Path:          path,
		Decompressors: resource.Decompressors.SCI01,
	}
}

// A RESOURCE.MAP entry is a little-endian uint16 id (type in the top five
// bits, number below) and a uint32 location (volume in the top six bits,
// offset below). An all-ones entry ends the map.
type mapEntry struct {
	ID       uint16
	Location uint32
}

func (e mapEntry) last() bool {
	return e.ID == 0xFFFF && e.Location == 0xFFFFFFFF
}

// LoadMapping reads RESOURCE.MAP from the game directory. Nothing is kept
// from a map that fails to load.
func (root *Root) LoadMapping() error {
	f, err := os.Open(filepath.Join(root.Path, "RESOURCE.MAP"))
	if err != nil {
		return err
	}
	defer f.Close()

	decompressors := root.Decompressors
	if decompressors == nil {
		decompressors = resource.Decompressors.SCI0
	}

	var mapping []resource.Mapping
	views := make(map[resource.Number]*viewEntry)

	for {
		var e mapEntry
		if err := binary.Read(f, binary.LittleEndian, &e); err != nil {
			if err == io.EOF {
				return fmt.Errorf("RESOURCE.MAP: missing end marker")
			}
			return err
		}
		if e.last() {
			root.Mapping, root.views = mapping, views
			return nil
		}

		m := &diskMapping{
			resourceType: resource.Type(e.ID >> 11),
			number:       resource.Number(e.ID & (1<<11 - 1)),
			volume:       uint8(e.Location >> 26),
			offset:       e.Location & (1<<26 - 1),

			rootPath:      root.Path,
			decompressors: decompressors,
		}

		if m.resourceType == resource.TypeView {
			vm := resource.ViewMapping{Mapping: m}
			views[m.number] = &viewEntry{ViewMapping: vm, loops: -1}
			mapping = append(mapping, vm)
			continue
		}
		mapping = append(mapping, m)
	}
}

// LoopCount returns the number of loops of a view. Views are read once
// and remembered.
func (root *Root) LoopCount(view int16) (int, error) {
	if root.views == nil {
		if err := root.LoadMapping(); err != nil {
			return 0, err
		}
	}

	entry, ok := root.views[resource.Number(view)]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNoView, view)
	}
	if entry.loops < 0 {
		v, err := entry.View()
		if err != nil {
			return 0, fmt.Errorf("view %d: %w", view, err)
		}
		entry.loops = v.LoopCount()
	}
	return entry.loops, nil
}
