package kernel

// Signal is the bit set stored in a view object's signal property.
type Signal uint16

const (
	SignalStopUpdate    Signal = 0x0001
	SignalViewUpdated   Signal = 0x0002
	SignalNoUpdate      Signal = 0x0004
	SignalHidden        Signal = 0x0008
	SignalFixedPriority Signal = 0x0010
	SignalAlwaysUpdate  Signal = 0x0020
	SignalForceUpdate   Signal = 0x0040
	SignalRemoveView    Signal = 0x0080
	SignalFrozen        Signal = 0x0100
	SignalExtraActor    Signal = 0x0200
	SignalHitObstacle   Signal = 0x0400
	SignalDoesntTurn    Signal = 0x0800
	SignalNoCycler      Signal = 0x1000
	SignalIgnoreHorizon Signal = 0x2000
	SignalIgnoreActor   Signal = 0x4000
	SignalDisposeMe     Signal = 0x8000
)
