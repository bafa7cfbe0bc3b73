package kernel

import (
	"fmt"

	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

// Bresen is the stepping state of a mover: the per-tick increment (DX, DY),
// the error accumulator DI with its two increments I1 (DI < 0) and I2
// (DI >= 0), and the unit correction Incr applied to the minor axis
// whenever I2 is taken.
type Bresen struct {
	DX, DY     int16
	I1, I2, DI int16
	Incr       int16
	XAxis      bool
}

// PlanBresen sets up stepping along (deltaX, deltaY) with the given per-tick
// step sizes. The axis with the larger delta is the major axis and always
// moves by its full step; the minor axis moves proportionally, plus Incr
// whenever the accumulator says the line has drifted.
//
// When x is the major axis and the steps would make the minor axis jump
// ahead of its correction, xStep is lowered one at a time until it fits.
func PlanBresen(deltaX, deltaY, xStep, yStep int16) (Bresen, error) {
	var b Bresen

	step := xStep * 2
	if xStep < yStep {
		step = yStep * 2
	}

	for {
		b = bresenFor(deltaX, deltaY, xStep, yStep)
		if !b.XAxis {
			break
		}
		if xStep <= yStep || xStep == 0 || int(yStep) >= abs(int(b.DY)+int(b.Incr)) {
			break
		}

		step--
		if step == 0 {
			return Bresen{}, ErrBresenFailed
		}
		xStep--
	}

	return b, nil
}

func bresenFor(deltaX, deltaY, xStep, yStep int16) Bresen {
	b := Bresen{DX: xStep, DY: yStep, Incr: 1}

	if abs(int(deltaX)) >= abs(int(deltaY)) {
		b.XAxis = true
		if deltaX < 0 {
			b.DX = -b.DX
		}
		b.DY = 0
		if deltaX != 0 {
			b.DY = int16(int(b.DX) * int(deltaY) / int(deltaX))
		}
		b.I1 = (b.DX*deltaY - b.DY*deltaX) * 2
		if deltaY < 0 {
			b.Incr = -1
			b.I1 = -b.I1
		}
		b.I2 = b.I1 - deltaX*2
		b.DI = b.I1 - deltaX
		if deltaX < 0 {
			b.I1, b.I2, b.DI = -b.I1, -b.I2, -b.DI
		}
		return b
	}

	if deltaY < 0 {
		b.DY = -b.DY
	}
	b.DX = 0
	if deltaY != 0 {
		b.DX = int16(int(b.DY) * int(deltaX) / int(deltaY))
	}
	b.I1 = (b.DY*deltaX - b.DX*deltaY) * 2
	if deltaX < 0 {
		b.Incr = -1
		b.I1 = -b.I1
	}
	b.I2 = b.I1 - deltaY*2
	b.DI = b.I1 - deltaY
	if deltaY < 0 {
		b.I1, b.I2, b.DI = -b.I1, -b.I2, -b.DI
	}
	return b
}

// InitBresen plans the motion of mover argv[0] from its client's position
// to the mover's (x, y). Optional argv[1] multiplies the client's steps.
func (k *Kernel) InitBresen(acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error) {
	if err := needArgs("InitBresen", argv, 1); err != nil {
		return acc, err
	}
	mover := argv[0]
	client := k.ref(mover, pmachine.SelClient)
	factor := optionalArg(argv, 1, 1)

	deltaX := k.value(mover, pmachine.SelX) - k.value(client, pmachine.SelX)
	deltaY := k.value(mover, pmachine.SelY) - k.value(client, pmachine.SelY)
	xStep := k.value(client, pmachine.SelXStep) * factor
	yStep := k.value(client, pmachine.SelYStep) * factor

	b, err := PlanBresen(deltaX, deltaY, xStep, yStep)
	if err != nil {
		return acc, fmt.Errorf("InitBresen %s: %w", mover, err)
	}

	k.log.Debug("InitBresen",
		zap.Stringer("mover", mover),
		zap.Int16("deltaX", deltaX),
		zap.Int16("deltaY", deltaY),
		zap.Int16("dx", b.DX),
		zap.Int16("dy", b.DY),
		zap.Int16("i1", b.I1),
		zap.Int16("i2", b.I2),
		zap.Int16("di", b.DI),
		zap.Int16("incr", b.Incr),
		zap.Bool("xAxis", b.XAxis),
	)

	k.setValue(mover, pmachine.SelDX, b.DX)
	k.setValue(mover, pmachine.SelDY, b.DY)
	k.setValue(mover, pmachine.SelI1, b.I1)
	k.setValue(mover, pmachine.SelI2, b.I2)
	k.setValue(mover, pmachine.SelDI, b.DI)
	k.setValue(mover, pmachine.SelIncr, b.Incr)
	xAxis := int16(0)
	if b.XAxis {
		xAxis = 1
	}
	k.setValue(mover, pmachine.SelXAxis, xAxis)
	return acc, nil
}

// Step is the outcome of one DoBresen tick.
type Step uint8

const (
	// StepSkipped means the move count has not reached moveSpeed yet.
	StepSkipped Step = iota
	StepMoved
	// StepBlocked means the client could not be at its new position and
	// was put back.
	StepBlocked
	// StepCompleted means the client is on the mover's target.
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepSkipped:
		return "Step(Skipped)"
	case StepMoved:
		return "Step(Moved)"
	case StepBlocked:
		return "Step(Blocked)"
	case StepCompleted:
		return "Step(Completed)"
	}
	return "Step(UNKNOWN)"
}

// DoBresen advances the client of mover argv[0] by one tick. The result
// is what the last selector invoked on the way left in the accumulator:
// cantBeHere (or canBeHere), then moveDone. A skipped tick leaves acc as
// it was.
func (k *Kernel) DoBresen(acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error) {
	if err := needArgs("DoBresen", argv, 1); err != nil {
		return acc, err
	}
	_, acc = k.doBresen(argv[0], acc)
	return acc, nil
}

// StepBresen is DoBresen with the outcome reported.
func (k *Kernel) StepBresen(mover pmachine.Reg) Step {
	result, _ := k.doBresen(mover, pmachine.Null)
	return result
}

func (k *Kernel) doBresen(mover, acc pmachine.Reg) (Step, pmachine.Reg) {
	client := k.ref(mover, pmachine.SelClient)

	if k.trackObstacle {
		signal := Signal(k.value(client, pmachine.SelSignal))
		k.setValue(client, pmachine.SelSignal, int16(signal&^SignalHitObstacle))
	}

	moveCount, moveSpeed := int16(1), int16(0)
	if k.moveCount {
		moveCount = k.value(mover, pmachine.SelMoveCount) + 1
		moveSpeed = k.value(client, pmachine.SelMoveSpeed)
	}

	if moveSpeed >= moveCount {
		if k.moveCount {
			if k.skipStoresSpeed {
				k.setValue(mover, pmachine.SelMoveCount, moveSpeed)
			} else {
				k.setValue(mover, pmachine.SelMoveCount, moveCount)
			}
		}
		return StepSkipped, acc
	}

	result, arrived, acc := k.step(mover, client)

	if k.moveCount && k.moveCountInStep {
		k.setValue(mover, pmachine.SelMoveCount, 0)
	}
	if k.trackObstacle {
		// A blocked step onto the target still ends the motion.
		if arrived {
			acc = k.store.Invoke(mover, pmachine.SelMoveDone)
		}
	}
	// Up to SCI1 EGA the count is stored after moveDone.
	if k.moveCount && !k.moveCountInStep {
		k.setValue(mover, pmachine.SelMoveCount, 0)
	}
	return result, acc
}

// step moves the client once and rolls the move back if the client may
// not stand there. arrived reports whether the attempted position was the
// target, whether or not the client got to stay there.
func (k *Kernel) step(mover, client pmachine.Reg) (result Step, arrived bool, acc pmachine.Reg) {
	x := k.value(client, pmachine.SelX)
	y := k.value(client, pmachine.SelY)
	orgX, orgY := x, y

	targetX := k.value(mover, pmachine.SelX)
	targetY := k.value(mover, pmachine.SelY)
	xAxis := k.value(mover, pmachine.SelXAxis) != 0
	dx := k.value(mover, pmachine.SelDX)
	dy := k.value(mover, pmachine.SelDY)
	incr := k.value(mover, pmachine.SelIncr)
	i1 := k.value(mover, pmachine.SelI1)
	i2 := k.value(mover, pmachine.SelI2)
	di := k.value(mover, pmachine.SelDI)
	orgI1, orgI2, orgDI := i1, i2, di

	if k.trackObstacle {
		k.setValue(mover, pmachine.SelXLast, x)
		k.setValue(mover, pmachine.SelYLast, y)
	}

	var completed bool
	if xAxis {
		completed = abs(int(targetX)-int(x)) < abs(int(dx))
	} else {
		completed = abs(int(targetY)-int(y)) < abs(int(dy))
	}

	if completed {
		x, y = targetX, targetY
	} else {
		x += dx
		y += dy
		if di < 0 {
			di += i1
		} else {
			di += i2
			if xAxis {
				y += incr
			} else {
				x += incr
			}
		}
	}
	k.setValue(client, pmachine.SelX, x)
	k.setValue(client, pmachine.SelY, y)

	arrived = x == targetX && y == targetY
	result = StepMoved
	if completed {
		result = StepCompleted
	}

	collision, acc := k.collides(client)
	if collision {
		k.setValue(client, pmachine.SelX, orgX)
		k.setValue(client, pmachine.SelY, orgY)
		i1, i2, di = orgI1, orgI2, orgDI

		signal := Signal(k.value(client, pmachine.SelSignal))
		k.setValue(client, pmachine.SelSignal, int16(signal|SignalHitObstacle))

		k.log.Debug("DoBresen blocked",
			zap.Stringer("client", client),
			zap.Int16("x", x),
			zap.Int16("y", y),
		)
		result = StepBlocked
	}

	k.setValue(mover, pmachine.SelI1, i1)
	k.setValue(mover, pmachine.SelI2, i2)
	k.setValue(mover, pmachine.SelDI, di)
	return result, arrived, acc
}

// collides asks the client whether it may stand where it is now. Games
// with cantBeHere answer non-null for a collision; older ones answer null
// from canBeHere.
func (k *Kernel) collides(client pmachine.Reg) (bool, pmachine.Reg) {
	if k.store.HasSelector(pmachine.SelCantBeHere) {
		acc := k.store.Invoke(client, pmachine.SelCantBeHere)
		return !acc.IsNull(), acc
	}
	acc := k.store.Invoke(client, pmachine.SelCanBeHere)
	return acc.IsNull(), acc
}
