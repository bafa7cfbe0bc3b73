// Package kernel implements the SCI motion kernel calls: SetJump,
// InitBresen, DoBresen and DoAvoider.
//
// Kernel calls keep no state of their own between ticks. Everything a mover
// needs to continue is written back into its properties, so a call may be
// interleaved with arbitrary script code as long as calls are not made
// concurrently.
package kernel

import (
	"errors"
	"fmt"

	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

var (
	ErrNotObject       = errors.New("not an object")
	ErrBresenFailed    = errors.New("bresenham step repair exhausted")
	ErrNegativeGravity = errors.New("negative gravity")
	ErrArgCount        = errors.New("not enough arguments")
	ErrUnknownCall     = errors.New("unknown kernel call")
)

// SignalReg is returned by calls that have nothing to report.
const SignalReg = pmachine.Reg(0xFFFF)

// MoveCount selects whether DoBresen throttles steps by the client's
// moveSpeed.
type MoveCount uint8

const (
	MoveCountAuto MoveCount = iota
	MoveCountIncrement
	MoveCountIgnore
)

type Config struct {
	Version   pmachine.Version
	MoveCount MoveCount

	// Rand picks the turn direction of a blocked avoider. Defaults to a
	// source seeded with 1.
	Rand RandomBit

	// Views answers loop counts for DirLoop. When nil every view is
	// assumed to have all four directional loops.
	Views Views

	Logger *zap.Logger
}

// behavior is the set of generation-dependent branches, resolved once.
type behavior struct {
	// Clear and set the obstacle signal bit, remember xLast/yLast, and
	// send moveDone on arrival.
	trackObstacle bool
	// Throttle stepping by moveSpeed.
	moveCount bool
	// Persist the move count inside the step branch and stop there.
	moveCountInStep bool
	// On a skipped tick, store moveSpeed instead of the running count.
	skipStoresSpeed bool
	// Use the arctangent table for GetAngle.
	atanAngles bool
	// Use the 45 degree windows for up/down loops in DirLoop.
	wideDirLoop bool
}

func behaviorFor(v pmachine.Version, mc MoveCount) behavior {
	b := behavior{
		trackObstacle:   v >= pmachine.SCI1EGA,
		moveCountInStep: v >= pmachine.SCI1Early,
		skipStoresSpeed: v > pmachine.SCI1EGA,
		atanAngles:      v >= pmachine.SCI11,
		wideDirLoop:     v > pmachine.SCI0Early,
	}
	switch mc {
	case MoveCountIncrement:
		b.moveCount = true
	case MoveCountIgnore:
		b.moveCount = false
	default:
		b.moveCount = v < pmachine.SCI11
	}
	return b
}

type Kernel struct {
	store   pmachine.Store
	version pmachine.Version
	behavior
	rand  RandomBit
	views Views
	log   *zap.Logger
}

func New(store pmachine.Store, cfg Config) *Kernel {
	k := &Kernel{
		store:    store,
		version:  cfg.Version,
		behavior: behaviorFor(cfg.Version, cfg.MoveCount),
		rand:     cfg.Rand,
		views:    cfg.Views,
		log:      cfg.Logger,
	}
	if k.rand == nil {
		k.rand = NewRandSource(1)
	}
	if k.log == nil {
		k.log = zap.NewNop()
	}
	return k
}

func (k *Kernel) Version() pmachine.Version { return k.version }

// Func is the shape of every kernel call: the current accumulator and the
// call's arguments in, the new accumulator out.
type Func func(k *Kernel, acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error)

var calls = map[string]Func{
	"SetJump":    (*Kernel).SetJump,
	"InitBresen": (*Kernel).InitBresen,
	"DoBresen":   (*Kernel).DoBresen,
	"DoAvoider":  (*Kernel).DoAvoider,
}

// Call dispatches a kernel call by name.
func (k *Kernel) Call(name string, acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error) {
	fn, ok := calls[name]
	if !ok {
		return acc, fmt.Errorf("%w: %s", ErrUnknownCall, name)
	}
	return fn(k, acc, argv)
}

func (k *Kernel) value(obj pmachine.Reg, sel pmachine.Selector) int16 {
	return k.store.Value(obj, sel).Int16()
}

func (k *Kernel) setValue(obj pmachine.Reg, sel pmachine.Selector, v int16) {
	k.store.SetValue(obj, sel, pmachine.Int(v))
}

func (k *Kernel) ref(obj pmachine.Reg, sel pmachine.Selector) pmachine.Reg {
	return k.store.Value(obj, sel)
}

func needArgs(name string, argv []pmachine.Reg, n int) error {
	if len(argv) < n {
		return fmt.Errorf("%s: %w: want %d, got %d", name, ErrArgCount, n, len(argv))
	}
	return nil
}

func optionalArg(argv []pmachine.Reg, i int, def int16) int16 {
	if len(argv) > i {
		return int16(argv[i].Offset())
	}
	return def
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
