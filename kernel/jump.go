package kernel

import (
	"fmt"
	"math"

	"github.com/32bitkid/sci-motion/pmachine"
	"go.uber.org/zap"
)

// SolveJump computes the initial step (vx, vy) that carries an object
// from (0, 0) to (dx, dy) under gravity gy. Each tick the stepper adds
// (vx, vy) to the position and then gy to vy.
//
// Continuous physics with vy = c*vx gives
//
//	|vx| = sqrt(gy * dx^2 / (2 * (dy + c*dx)))
//
// for dx >= 0, so c is picked to keep tmp = c*dx + dy positive and larger
// than dx, which keeps vx below sqrt(gy*dx) and the arc visibly curved.
// The result is an integer approximation of that formula; it ignores the
// discrete gy*t*(t-1)/2 term and rounds vx before deriving vy. Callers rely
// on this exact rounding, do not "fix" it.
//
// vy always points up. gy must not be negative.
func SolveJump(dx, dy, gy int16) (vx, vy int16) {
	vx, vy, _, _ = solveJump(dx, dy, gy)
	return vx, vy
}

func solveJump(dx, dy, gy int16) (vx, vy int16, c, tmp int) {
	x, y, g := int(dx), int(dy), int(gy)
	flip := x < 0
	x = abs(x)

	switch {
	case x == 0:
		// straight up; c is irrelevant
		c = 1
	case x+y < 0:
		// dy is negative and steeper than dx
		c = (2 * abs(y)) / x
	default:
		c = (x*3/2 - y) / x
		if c < 1 {
			c = 1
		}
	}
	tmp = c*x + y

	var ix int
	if tmp > 0 {
		ix = int(int16(float32(float64(x) * math.Sqrt(float64(g)/(2.0*float64(tmp))))))
	}
	if flip {
		ix = -ix
	}

	var iy int
	if y < 0 && ix == 0 {
		// Nearly vertical: drop the vy = c*vx assumption.
		iy = int(math.Sqrt(float64(float32(g)*float32(abs(2*y))))) + 1
	} else {
		iy = c * ix
	}
	iy = -abs(iy)

	return int16(ix), int16(iy), c, tmp
}

// SetJump sets xStep and yStep of argv[0] for a jump by (argv[1], argv[2])
// under gravity argv[3].
func (k *Kernel) SetJump(acc pmachine.Reg, argv []pmachine.Reg) (pmachine.Reg, error) {
	if err := needArgs("SetJump", argv, 4); err != nil {
		return acc, err
	}
	object := argv[0]
	dx, dy, gy := argv[1].Int16(), argv[2].Int16(), argv[3].Int16()
	if gy < 0 {
		return acc, fmt.Errorf("SetJump %s: %w: %d", object, ErrNegativeGravity, gy)
	}

	vx, vy, c, tmp := solveJump(dx, dy, gy)
	k.log.Debug("SetJump",
		zap.Stringer("object", object),
		zap.Int("c", c),
		zap.Int("tmp", tmp),
		zap.Int16("xStep", vx),
		zap.Int16("yStep", vy),
	)

	k.setValue(object, pmachine.SelXStep, vx)
	k.setValue(object, pmachine.SelYStep, vy)
	return acc, nil
}
