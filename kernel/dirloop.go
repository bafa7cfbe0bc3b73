package kernel

import (
	"fmt"

	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

// Views reports how many loops a view resource has.
type Views interface {
	LoopCount(view int16) (int, error)
}

// StaticViews is a fixed table of loop counts. Views missing from the
// table have four loops.
type StaticViews map[int16]int

func (sv StaticViews) LoopCount(view int16) (int, error) {
	if n, ok := sv[view]; ok {
		return n, nil
	}
	return 4, nil
}

// Conventional loop order of an actor's view.
const (
	LoopRight int16 = iota
	LoopLeft
	LoopDown
	LoopUp
)

// DirLoop turns obj to face angle by choosing one of its view's loops.
// Objects whose signal has SignalDoesntTurn are left alone, and the up and
// down loops are only used when the view has them.
func (k *Kernel) DirLoop(obj pmachine.Reg, angle uint16) error {
	signal := Signal(k.value(obj, pmachine.SelSignal))
	if signal&SignalDoesntTurn != 0 {
		return nil
	}

	loop := int16(-1)
	if k.wideDirLoop {
		switch {
		case angle > 315 || angle < 45:
			loop = LoopUp
		case angle > 135 && angle < 225:
			loop = LoopDown
		}
	} else {
		switch {
		case angle > 330 || angle < 30:
			loop = LoopUp
		case angle > 150 && angle < 210:
			loop = LoopDown
		}
	}

	if loop == -1 {
		loop = LoopRight
		if angle >= 180 {
			loop = LoopLeft
		}
	} else if k.views != nil {
		view := k.value(obj, pmachine.SelView)
		n, err := k.views.LoopCount(view)
		if err != nil {
			return fmt.Errorf("DirLoop %s: view %d: %w", obj, view, err)
		}
		if n < 4 {
			return nil
		}
	}

	k.log.Debug("DirLoop",
		zap.Stringer("object", obj),
		zap.Uint16("angle", angle),
		zap.Int16("loop", loop),
	)
	k.setValue(obj, pmachine.SelLoop, loop)
	return nil
}
