// Package pmachine describes the parts of the SCI p-machine that kernel
// calls talk to: registers, selectors, and the object store that holds
// every object's properties and methods.
package pmachine

import "fmt"

// Reg is a p-machine register. The low 16 bits are the offset and the
// high 16 bits the segment; a register in segment 0 is a plain integer,
// anything else refers to an object.
type Reg int32

const Null Reg = 0

func Make(segment, offset uint16) Reg {
	return Reg(uint32(segment)<<16 | uint32(offset))
}

// Int wraps a signed 16-bit value into a register.
func Int(v int16) Reg { return Reg(uint16(v)) }

func (r Reg) Segment() uint16 { return uint16(uint32(r) >> 16) }
func (r Reg) Offset() uint16  { return uint16(r) }
func (r Reg) Int16() int16    { return int16(r) }
func (r Reg) IsNull() bool    { return r == Null }

func (r Reg) String() string {
	return fmt.Sprintf("%04x:%04x", r.Segment(), r.Offset())
}
