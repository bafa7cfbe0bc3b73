package main

import (
	"fmt"
	"image"

	"github.com/32bitkid/sci-motion/kernel"
	"github.com/32bitkid/sci-motion/pmachine"
	"github.com/32bitkid/sci-motion/screen"
	"go.uber.org/zap"
)

// scene is a single actor on an empty room with rectangular obstacles,
// standing in for the script objects a game would provide.
type scene struct {
	heap  *pmachine.Heap
	k     *kernel.Kernel
	log   *zap.Logger
	trace *screen.Trace

	actor pmachine.Reg
	done  bool
}

func newScene(cfg kernel.Config, walls []image.Rectangle) *scene {
	heap := pmachine.NewHeap()
	if cfg.Version < pmachine.SCI01 {
		heap.Forget(pmachine.SelCantBeHere)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &scene{
		heap:  heap,
		k:     kernel.New(heap, cfg),
		log:   log,
		trace: screen.NewTrace(walls...),
	}
}

func (s *scene) free(x, y int16) bool {
	p := image.Pt(int(x), int(y))
	for _, w := range s.trace.Walls {
		if p.In(w) {
			return false
		}
	}
	return true
}

func boolReg(b bool) pmachine.Reg {
	if b {
		return pmachine.Int(1)
	}
	return pmachine.Null
}

func (s *scene) newActor(opts options) pmachine.Reg {
	actor := s.heap.New("ego", pmachine.Props{
		pmachine.SelX:         pmachine.Int(opts.from.x),
		pmachine.SelY:         pmachine.Int(opts.from.y),
		pmachine.SelXStep:     pmachine.Int(opts.step.x),
		pmachine.SelYStep:     pmachine.Int(opts.step.y),
		pmachine.SelMoveSpeed: pmachine.Int(opts.speed),
		pmachine.SelView:      pmachine.Int(opts.view),
	})
	canBeHere := func(h *pmachine.Heap, self pmachine.Reg, _ ...pmachine.Reg) bool {
		return s.free(h.Value(self, pmachine.SelX).Int16(), h.Value(self, pmachine.SelY).Int16())
	}
	s.heap.Bind(actor, pmachine.SelCanBeHere, func(h *pmachine.Heap, self pmachine.Reg, args ...pmachine.Reg) pmachine.Reg {
		return boolReg(canBeHere(h, self, args...))
	})
	s.heap.Bind(actor, pmachine.SelCantBeHere, func(h *pmachine.Heap, self pmachine.Reg, args ...pmachine.Reg) pmachine.Reg {
		return boolReg(!canBeHere(h, self, args...))
	})
	s.heap.Bind(actor, pmachine.SelIsBlocked, func(h *pmachine.Heap, self pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		return boolReg(s.blocked(self))
	})
	s.actor = actor
	s.record()
	return actor
}

func (s *scene) blocked(obj pmachine.Reg) bool {
	return kernel.Signal(s.heap.Value(obj, pmachine.SelSignal).Int16())&kernel.SignalHitObstacle != 0
}

func (s *scene) pos(obj pmachine.Reg) point {
	return point{
		s.heap.Value(obj, pmachine.SelX).Int16(),
		s.heap.Value(obj, pmachine.SelY).Int16(),
	}
}

func (s *scene) record() {
	p := s.pos(s.actor)
	s.trace.Record(p.x, p.y, s.blocked(s.actor))
}

// newMover attaches a Bresenham mover heading for target. Its doit steps
// the actor and its moveDone ends the scene.
func (s *scene) newMover(target point) pmachine.Reg {
	mover := s.heap.New("MoveTo", pmachine.Props{
		pmachine.SelClient: s.actor,
		pmachine.SelX:      pmachine.Int(target.x),
		pmachine.SelY:      pmachine.Int(target.y),
	})
	s.heap.SetValue(s.actor, pmachine.SelMover, mover)
	s.heap.Bind(mover, pmachine.SelDoit, func(_ *pmachine.Heap, self pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		acc, err := s.k.Call("DoBresen", pmachine.Null, []pmachine.Reg{self})
		if err != nil {
			s.log.Error("doit", zap.Error(err))
		}
		return acc
	})
	s.heap.Bind(mover, pmachine.SelMoveDone, func(h *pmachine.Heap, self pmachine.Reg, _ ...pmachine.Reg) pmachine.Reg {
		s.done = true
		return pmachine.Null
	})
	return mover
}

func (s *scene) arrived(mover pmachine.Reg) bool {
	return s.done || s.pos(s.actor) == s.pos(mover)
}

func run(opts options, cfg kernel.Config) (*scene, error) {
	s := newScene(cfg, opts.walls)
	s.newActor(opts)

	var err error
	switch opts.scenario {
	case "jump":
		err = s.jump(opts)
	case "walk":
		err = s.walk(opts)
	case "avoid":
		err = s.avoid(opts)
	default:
		err = fmt.Errorf("unknown scenario %q", opts.scenario)
	}
	return s, err
}

// jump throws the actor by opts.to, adding gravity to yStep each tick
// until it comes down on the landing spot or hits a wall.
func (s *scene) jump(opts options) error {
	mover := s.heap.New("Jump", pmachine.Props{pmachine.SelClient: s.actor})
	_, err := s.k.Call("SetJump", pmachine.Null, []pmachine.Reg{
		mover,
		pmachine.Int(opts.to.x),
		pmachine.Int(opts.to.y),
		pmachine.Int(opts.gravity),
	})
	if err != nil {
		return err
	}

	land := point{opts.from.x + opts.to.x, opts.from.y + opts.to.y}
	xStep := s.heap.Value(mover, pmachine.SelXStep).Int16()
	yStep := s.heap.Value(mover, pmachine.SelYStep).Int16()
	s.log.Info("jump", zap.Int16("xStep", xStep), zap.Int16("yStep", yStep))

	p := opts.from
	for tick := 0; tick < opts.ticks; tick++ {
		next := point{p.x + xStep, p.y + yStep}
		yStep += opts.gravity
		if yStep > 0 && next.y >= land.y {
			next = land
		}

		if !s.free(next.x, next.y) {
			s.trace.Record(next.x, next.y, true)
			s.log.Info("jump blocked", zap.Int("tick", tick), zap.Stringer("at", next))
			return nil
		}
		p = next
		s.heap.SetValue(s.actor, pmachine.SelX, pmachine.Int(p.x))
		s.heap.SetValue(s.actor, pmachine.SelY, pmachine.Int(p.y))
		s.record()
		if p == land {
			s.log.Info("landed", zap.Int("ticks", tick+1), zap.Stringer("at", p))
			return nil
		}
	}
	s.log.Warn("out of ticks", zap.Stringer("at", p))
	return nil
}

// walk runs a plain Bresenham mover. The first obstacle ends the walk.
func (s *scene) walk(opts options) error {
	mover := s.newMover(opts.to)
	if _, err := s.k.Call("InitBresen", pmachine.Null, []pmachine.Reg{mover}); err != nil {
		return err
	}

	for tick := 0; tick < opts.ticks; tick++ {
		result := s.k.StepBresen(mover)
		if result == kernel.StepSkipped {
			continue
		}
		if result == kernel.StepBlocked {
			p := s.pos(s.actor)
			s.trace.Record(p.x, p.y, true)
			s.log.Info("walk blocked", zap.Int("tick", tick), zap.Stringer("at", p))
			return nil
		}
		s.record()
		if s.arrived(mover) {
			s.log.Info("arrived", zap.Int("ticks", tick+1), zap.Stringer("at", s.pos(s.actor)))
			return nil
		}
	}
	s.log.Warn("out of ticks", zap.Stringer("at", s.pos(s.actor)))
	return nil
}

// avoid walks to opts.to under an avoider, re-planning the mover whenever
// the avoider sidesteps.
func (s *scene) avoid(opts options) error {
	mover := s.newMover(opts.to)
	avoider := s.heap.New("Avoid", pmachine.Props{
		pmachine.SelClient:  s.actor,
		pmachine.SelHeading: pmachine.Int(kernel.NoHeading),
	})
	initBresen := func() error {
		_, err := s.k.Call("InitBresen", pmachine.Null, []pmachine.Reg{mover})
		return err
	}
	if err := initBresen(); err != nil {
		return err
	}

	for tick := 0; tick < opts.ticks; tick++ {
		// Actors drop the blocked bit at the start of every cycle.
		signal := kernel.Signal(s.heap.Value(s.actor, pmachine.SelSignal).Int16())
		s.heap.SetValue(s.actor, pmachine.SelSignal, pmachine.Int(int16(signal&^kernel.SignalHitObstacle)))

		acc, err := s.k.Call("DoAvoider", pmachine.Null, []pmachine.Reg{avoider})
		if err != nil {
			return err
		}
		s.record()
		if s.arrived(mover) {
			s.log.Info("arrived", zap.Int("ticks", tick+1), zap.Stringer("at", s.pos(s.actor)))
			return nil
		}
		if acc != kernel.SignalReg {
			s.log.Debug("sidestep", zap.Int("tick", tick), zap.Int16("heading", acc.Int16()))
			if err := initBresen(); err != nil {
				return err
			}
		}
	}
	s.log.Warn("out of ticks", zap.Stringer("at", s.pos(s.actor)))
	return nil
}
