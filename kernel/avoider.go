package kernel

import (
	"fmt"

	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

// NoHeading is the avoider heading while the client is not avoiding
// anything.
const NoHeading int16 = -1

// DoAvoider runs one tick of avoider argv[0]: it lets the client's mover
// step and, if the client ended up blocked, searches the eight compass
// headings for a free spot one step away. Optional argv[1] multiplies the
// client's steps.
//
// The result is the heading the client escaped to, or SignalReg when
// nothing was found or nothing needed doing.
func (k *Kernel) DoAvoider(acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error) {
	if err := needArgs("DoAvoider", argv, 1); err != nil {
		return acc, err
	}
	avoider := argv[0]
	timesStep := optionalArg(argv, 1, 1)

	if !k.store.IsObject(avoider) {
		return acc, fmt.Errorf("DoAvoider %s: %w", avoider, ErrNotObject)
	}

	client := k.ref(avoider, pmachine.SelClient)
	mover := k.ref(client, pmachine.SelMover)
	if mover.IsNull() {
		return SignalReg, nil
	}

	k.store.Invoke(mover, pmachine.SelDoit)

	// doit may have disposed of the mover.
	mover = k.ref(client, pmachine.SelMover)
	if mover.IsNull() {
		return SignalReg, nil
	}

	clientX := k.value(client, pmachine.SelX)
	clientY := k.value(client, pmachine.SelY)
	moverX := k.value(mover, pmachine.SelX)
	moverY := k.value(mover, pmachine.SelY)
	heading := k.value(avoider, pmachine.SelHeading)

	if k.store.Invoke(client, pmachine.SelIsBlocked).IsNull() {
		if heading == NoHeading {
			return SignalReg, nil
		}
		heading = NoHeading

		angle := k.GetAngle(clientX, clientY, moverX, moverY)
		looper := k.ref(client, pmachine.SelLooper)
		if looper.IsNull() {
			if err := k.DirLoop(client, angle); err != nil {
				return acc, err
			}
		} else {
			k.store.Invoke(looper, pmachine.SelDoit, pmachine.Int(int16(angle)), client)
		}
		k.setValue(avoider, pmachine.SelHeading, heading)
		return SignalReg, nil
	}

	if heading == NoHeading {
		heading = -45
		if k.rand.Bit() {
			heading = 45
		}
	}

	xStep := k.value(client, pmachine.SelXStep) * timesStep
	yStep := k.value(client, pmachine.SelYStep) * timesStep
	start := normalizeHeading(k.value(client, pmachine.SelHeading) / 45 * 45)

	result := SignalReg
	escaped := false
	for i, h := 0, start; i < 8; i++ {
		x, y := clientX, clientY
		switch h {
		case 45, 90, 135:
			x += xStep
		case 225, 270, 315:
			x -= xStep
		}
		switch h {
		case 0, 45, 315:
			y -= yStep
		case 135, 180, 225:
			y += yStep
		}
		k.setValue(client, pmachine.SelX, x)
		k.setValue(client, pmachine.SelY, y)

		if !k.store.Invoke(client, pmachine.SelCanBeHere).IsNull() {
			result = pmachine.Int(h)
			escaped = true
			break
		}

		h = normalizeHeading(h + heading)
		if h == start {
			break
		}
	}

	if !escaped {
		k.setValue(client, pmachine.SelX, clientX)
		k.setValue(client, pmachine.SelY, clientY)
	}

	k.log.Debug("DoAvoider blocked",
		zap.Stringer("avoider", avoider),
		zap.Int16("turn", heading),
		zap.Bool("escaped", escaped),
		zap.Int16("heading", result.Int16()),
	)
	k.setValue(avoider, pmachine.SelHeading, heading)
	return result, nil
}

func normalizeHeading(h int16) int16 {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
