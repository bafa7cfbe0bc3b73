package pmachine

type Selector uint8

const (
	SelX Selector = iota
	SelY
	SelXStep
	SelYStep
	SelDX
	SelDY
	SelI1
	SelI2
	SelDI
	SelIncr
	SelXAxis
	SelMoveCount
	SelXLast
	SelYLast
	SelMoveSpeed
	SelSignal
	SelClient
	SelMover
	SelLooper
	SelHeading
	SelView
	SelLoop
	SelDoit
	SelMoveDone
	SelCanBeHere
	SelCantBeHere
	SelIsBlocked

	selectorCount
)

var selectorNames = [selectorCount]string{
	SelX:          "x",
	SelY:          "y",
	SelXStep:      "xStep",
	SelYStep:      "yStep",
	SelDX:         "dx",
	SelDY:         "dy",
	SelI1:         "b-i1",
	SelI2:         "b-i2",
	SelDI:         "b-di",
	SelIncr:       "b-incr",
	SelXAxis:      "b-xAxis",
	SelMoveCount:  "b-moveCnt",
	SelXLast:      "xLast",
	SelYLast:      "yLast",
	SelMoveSpeed:  "moveSpeed",
	SelSignal:     "signal",
	SelClient:     "client",
	SelMover:      "mover",
	SelLooper:     "looper",
	SelHeading:    "heading",
	SelView:       "view",
	SelLoop:       "loop",
	SelDoit:       "doit",
	SelMoveDone:   "moveDone",
	SelCanBeHere:  "canBeHere",
	SelCantBeHere: "cantBeHere",
	SelIsBlocked:  "isBlocked",
}

// String returns the name the selector has in the game's vocabulary.
func (s Selector) String() string {
	if s < selectorCount {
		return selectorNames[s]
	}
	return "Selector(UNKNOWN)"
}
