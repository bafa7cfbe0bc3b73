package kernel

// 10000 * tan(a) for a = 5, 10, ... 45 degrees.
var tanTable = [...]int{875, 1763, 2679, 3640, 4663, 5774, 7002, 8391, 10000}

// GetAngle returns the heading in degrees from (x1, y1) to (x2, y2).
// 0 is up and angles grow clockwise. Coincident points give 0.
func (k *Kernel) GetAngle(x1, y1, x2, y2 int16) uint16 {
	if k.atanAngles {
		return AngleATan(x1, y1, x2, y2)
	}
	return AngleGrads(x1, y1, x2, y2)
}

// AngleGrads is the angle approximation of SCI0 through SCI1: the angle is
// estimated in grads within the quadrant as 100*x/(x+y), then mirrored
// into place and converted to degrees.
func AngleGrads(x1, y1, x2, y2 int16) uint16 {
	xRel := int(x2) - int(x1)
	yRel := int(y1) - int(y2) // screen y grows downward

	if y1 < y2 {
		yRel = -yRel
	}
	if x2 < x1 {
		xRel = -xRel
	}
	if xRel == 0 && yRel == 0 {
		return 0
	}

	angle := 100 * xRel / (xRel + yRel)
	if y1 < y2 {
		angle = 200 - angle
	}
	if x2 < x1 {
		angle = 400 - angle
	}

	angle = angle * 9 / 10
	if angle >= 360 {
		angle -= 360
	}
	return uint16(angle)
}

// AngleATan is the SCI1.1 angle: an integer arctangent interpolated from
// tanTable.
func AngleATan(x1, y1, x2, y2 int16) uint16 {
	return uint16(atan(int(x2)-int(x1), int(y1)-int(y2)))
}

// atan returns the clockwise angle of (y, x) measured from the x axis,
// where x points up the screen and y to the right.
func atan(y, x int) int {
	if y < 0 {
		a := atan(-y, -x)
		if a == 180 {
			return 0
		}
		return 180 + a
	}
	if x < 0 {
		return 90 + atan(-x, y)
	}
	if y > x {
		return 90 - atan(x, y)
	}
	return atanOctant(y, x)
}

// atanOctant handles 0 <= y <= x.
func atanOctant(y, x int) int {
	if x == 0 {
		return 0
	}

	t := 10000 * y / x
	if t < 1000 {
		// below tan 0.1 the arctangent is close to linear; 57 ~ 180/pi
		return (57*y + x/2) / x
	}

	i := 1
	for t > tanTable[i] {
		i++
	}
	dist := tanTable[i] - tanTable[i-1]
	interp := (5*(t-tanTable[i-1]) + dist/2) / dist
	return 5*i + interp
}
