package kernel

import (
	"errors"
	"testing"

	"github.com/32bitkid/sci-motion/pmachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noBits struct{ t *testing.T }

func (n noBits) Bit() bool {
	n.t.Error("unexpected coin flip")
	return false
}

// avoiderWorld sets up an avoider around a client whose mover does
// nothing when stepped, so the test controls blocking directly.
func avoiderWorld(t *testing.T, rnd RandomBit, blocked bool) (*world, pmachine.Reg, pmachine.Reg, pmachine.Reg) {
	w := newWorld(Config{Version: pmachine.SCI1Late, Rand: rnd})
	client := w.actor(50, 50, 3, 2)
	mover, _ := w.mover(client, 90, 50)
	w.heap.Bind(mover, pmachine.SelDoit, func(_ *pmachine.Heap, _ pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		return pmachine.Null
	})
	w.heap.Bind(client, pmachine.SelIsBlocked, func(_ *pmachine.Heap, _ pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		if blocked {
			return pmachine.Int(1)
		}
		return pmachine.Null
	})
	avoider := w.heap.New("avoider", pmachine.Props{
		pmachine.SelClient:  client,
		pmachine.SelHeading: pmachine.Int(NoHeading),
	})
	return w, avoider, client, mover
}

func TestDoAvoiderNotObject(t *testing.T) {
	w := newWorld(Config{Version: pmachine.SCI1Late})
	_, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{pmachine.Int(5)})
	assert.True(t, errors.Is(err, ErrNotObject))
}

func TestDoAvoiderWithoutMover(t *testing.T) {
	w := newWorld(Config{Version: pmachine.SCI1Late})
	client := w.actor(50, 50, 3, 2)
	avoider := w.heap.New("avoider", pmachine.Props{pmachine.SelClient: client})

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, SignalReg, acc)
	assert.Empty(t, w.rec.writes)
}

func TestDoAvoiderMoverDisposed(t *testing.T) {
	w, avoider, client, mover := avoiderWorld(t, noBits{t}, true)
	w.heap.Bind(mover, pmachine.SelDoit, func(h *pmachine.Heap, self pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		h.SetValue(client, pmachine.SelMover, pmachine.Null)
		h.Dispose(self)
		return pmachine.Null
	})

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, SignalReg, acc)
	assert.Empty(t, w.rec.writes)
	assert.Zero(t, w.probes)
}

func TestDoAvoiderSteps(t *testing.T) {
	w := newWorld(Config{Version: pmachine.SCI1Late})
	client := w.actor(10, 10, 3, 2)
	w.mover(client, 70, 40)
	avoider := w.heap.New("avoider", pmachine.Props{
		pmachine.SelClient:  client,
		pmachine.SelHeading: pmachine.Int(NoHeading),
	})
	mover := w.heap.Value(client, pmachine.SelMover)
	_, err := w.k.InitBresen(pmachine.Null, []pmachine.Reg{mover})
	require.NoError(t, err)

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, SignalReg, acc)

	x, y := w.pos(client)
	assert.Equal(t, int16(13), x)
	assert.Equal(t, int16(12), y)
}

func TestDoAvoiderUnblockedIsNoop(t *testing.T) {
	w, avoider, _, _ := avoiderWorld(t, noBits{t}, false)

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, SignalReg, acc)
	assert.Empty(t, w.rec.writes)
}

func TestDoAvoiderUnblockedTurnsToMover(t *testing.T) {
	cases := []struct {
		x, y int16
		loop int16
	}{
		{90, 50, LoopRight},
		{10, 50, LoopLeft},
		{50, 90, LoopDown},
		{50, 10, LoopUp},
	}
	for _, c := range cases {
		w, avoider, client, mover := avoiderWorld(t, noBits{t}, false)
		w.heap.SetValue(avoider, pmachine.SelHeading, pmachine.Int(45))
		w.heap.SetValue(client, pmachine.SelLoop, pmachine.Int(-1))
		w.heap.SetValue(mover, pmachine.SelX, pmachine.Int(c.x))
		w.heap.SetValue(mover, pmachine.SelY, pmachine.Int(c.y))

		acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
		require.NoError(t, err)
		assert.Equal(t, SignalReg, acc)
		assert.Equal(t, NoHeading, w.heap.Value(avoider, pmachine.SelHeading).Int16())
		assert.Equal(t, c.loop, w.heap.Value(client, pmachine.SelLoop).Int16(), "target (%d,%d)", c.x, c.y)
	}
}

func TestDoAvoiderUnblockedUsesLooper(t *testing.T) {
	w, avoider, client, mover := avoiderWorld(t, noBits{t}, false)
	w.heap.SetValue(avoider, pmachine.SelHeading, pmachine.Int(-45))
	w.heap.SetValue(mover, pmachine.SelX, pmachine.Int(50))
	w.heap.SetValue(mover, pmachine.SelY, pmachine.Int(90))

	var got []pmachine.Reg
	looper := w.heap.New("looper", nil)
	w.heap.Bind(looper, pmachine.SelDoit, func(_ *pmachine.Heap, _ pmachine.Reg, args ...pmachine.Reg) pmachine.Reg {
		got = args
		return pmachine.Null
	})
	w.heap.SetValue(client, pmachine.SelLooper, looper)

	_, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, []pmachine.Reg{pmachine.Int(180), client}, got)
	assert.Equal(t, pmachine.Null, w.heap.Value(client, pmachine.SelLoop))
}

func TestDoAvoiderEscapes(t *testing.T) {
	w, avoider, client, _ := avoiderWorld(t, fixedBit(true), true)
	w.walls = []rect{{50, 48, 50, 48}}

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, pmachine.Int(45), acc)
	assert.Equal(t, int16(45), w.heap.Value(avoider, pmachine.SelHeading).Int16())

	x, y := w.pos(client)
	assert.Equal(t, int16(53), x)
	assert.Equal(t, int16(48), y)
	assert.Equal(t, 2, w.probes)
}

func TestDoAvoiderTurnsCounterClockwise(t *testing.T) {
	w, avoider, client, _ := avoiderWorld(t, fixedBit(false), true)
	w.heap.SetValue(client, pmachine.SelHeading, pmachine.Int(100))
	w.walls = []rect{{53, 50, 53, 50}}

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
	require.NoError(t, err)
	assert.Equal(t, pmachine.Int(45), acc)
	assert.Equal(t, int16(-45), w.heap.Value(avoider, pmachine.SelHeading).Int16())
}

func TestDoAvoiderKeepsTurnDirection(t *testing.T) {
	w, avoider, client, _ := avoiderWorld(t, noBits{t}, true)
	w.heap.SetValue(avoider, pmachine.SelHeading, pmachine.Int(45))
	w.heap.SetValue(client, pmachine.SelHeading, pmachine.Int(270))
	w.walls = []rect{{47, 50, 47, 50}}

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider, pmachine.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, pmachine.Int(315), acc)

	x, y := w.pos(client)
	assert.Equal(t, int16(47), x)
	assert.Equal(t, int16(48), y)
}

func TestDoAvoiderTimesStep(t *testing.T) {
	w, avoider, client, _ := avoiderWorld(t, fixedBit(true), true)

	acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider, pmachine.Int(2)})
	require.NoError(t, err)
	assert.Equal(t, pmachine.Int(0), acc)

	x, y := w.pos(client)
	assert.Equal(t, int16(50), x)
	assert.Equal(t, int16(46), y)
}

func TestDoAvoiderBoxedIn(t *testing.T) {
	for _, bit := range []bool{true, false} {
		w, avoider, client, _ := avoiderWorld(t, fixedBit(bit), true)
		w.heap.SetValue(client, pmachine.SelHeading, pmachine.Int(135))
		w.walls = []rect{{0, 0, 200, 200}}

		acc, err := w.k.DoAvoider(pmachine.Null, []pmachine.Reg{avoider})
		require.NoError(t, err)
		assert.Equal(t, SignalReg, acc)
		assert.Equal(t, 8, w.probes)

		x, y := w.pos(client)
		assert.Equal(t, int16(50), x)
		assert.Equal(t, int16(50), y)

		turn := int16(-45)
		if bit {
			turn = 45
		}
		assert.Equal(t, turn, w.heap.Value(avoider, pmachine.SelHeading).Int16())
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := map[int16]int16{0: 0, 45: 45, 360: 0, 405: 45, -45: 315, -360: 0}
	for in, out := range cases {
		assert.Equal(t, out, normalizeHeading(in), "%d", in)
	}
}
