package resource

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// View is the loop table of a view resource. Cel bitmaps are not decoded.
type View struct {
	Loops []Loop
}

type Loop struct {
	Cels     int
	Mirrored bool
}

func (v View) LoopCount() int { return len(v.Loops) }

// NewView decodes the header and loop table of a SCI0 view.
//
// offset | size    |
//      0 | 2       | loop count
//      2 | 2       | mirrored loop bitmask
//      4 | 4       | unused
//      8 | 2*loops | loop offsets
//
// Each loop starts with its cel count.
func NewView(b []byte) (View, error) {
	r := bytes.NewReader(b)

	var header struct {
		Loops    uint16
		Mirrored uint16
		_        uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return View{}, err
	}

	offsets := make([]uint16, header.Loops)
	if err := binary.Read(r, binary.LittleEndian, &offsets); err != nil {
		return View{}, err
	}

	view := View{Loops: make([]Loop, 0, header.Loops)}
	for i, offset := range offsets {
		if int(offset)+2 > len(b) {
			return View{}, fmt.Errorf("view: loop %d at %d is past the end", i, offset)
		}
		cels := binary.LittleEndian.Uint16(b[offset:])
		view.Loops = append(view.Loops, Loop{
			Cels:     int(cels),
			Mirrored: i < 16 && header.Mirrored&(1<<uint(i)) != 0,
		})
	}
	return view, nil
}
