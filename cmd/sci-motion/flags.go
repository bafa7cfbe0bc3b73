package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/32bitkid/sci-motion/pmachine"
)

type point struct{ x, y int16 }

func (p point) String() string { return fmt.Sprintf("%d,%d", p.x, p.y) }

func (p *point) Set(s string) error {
	v, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	p.x, p.y = v[0], v[1]
	return nil
}

// walls collects -wall flags. Corners are inclusive.
type walls []image.Rectangle

func (w *walls) String() string {
	parts := make([]string, 0, len(*w))
	for _, r := range *w {
		parts = append(parts, fmt.Sprintf("%d,%d,%d,%d", r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1))
	}
	return strings.Join(parts, " ")
}

func (w *walls) Set(s string) error {
	v, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	r := image.Rect(int(v[0]), int(v[1]), int(v[2]), int(v[3]))
	r.Max = r.Max.Add(image.Pt(1, 1))
	*w = append(*w, r)
	return nil
}

func parseInts(s string, n int) ([]int16, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: want %d comma separated numbers", s, n)
	}
	v := make([]int16, n)
	for i, f := range fields {
		x, err := strconv.ParseInt(strings.TrimSpace(f), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = int16(x)
	}
	return v, nil
}

type options struct {
	scenario string
	version  pmachine.Version

	from, to, step point
	gravity        int16
	speed          int16
	view           int16
	walls          walls
	ticks          int
	seed           int64

	game    string
	png     string
	log     string
	verbose bool
}

func parseOptions(args []string, output io.Writer) (options, error) {
	opts := options{
		from: point{20, 100},
		to:   point{200, 100},
		step: point{3, 2},
	}

	fs := flag.NewFlagSet("sci-motion", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: sci-motion [flags] jump|walk|avoid")
		fs.PrintDefaults()
	}

	var version string
	var gravity, speed, view int
	fs.StringVar(&version, "version", "sci1", "interpreter version: sci0early, sci0, sci01, sci1ega, sci1early, sci1middle, sci1, sci11")
	fs.Var(&opts.from, "from", "start position `x,y`")
	fs.Var(&opts.to, "to", "walk target, or jump displacement, `x,y`")
	fs.Var(&opts.step, "step", "actor step size `x,y`")
	fs.IntVar(&gravity, "gravity", 3, "jump gravity")
	fs.IntVar(&speed, "speed", 0, "actor moveSpeed")
	fs.IntVar(&view, "view", 0, "actor view number")
	fs.Var(&opts.walls, "wall", "blocked rectangle `x0,y0,x1,y1` (repeatable)")
	fs.IntVar(&opts.ticks, "ticks", 500, "maximum number of ticks")
	fs.Int64Var(&opts.seed, "seed", 1, "seed for the avoider's turn direction")
	fs.StringVar(&opts.game, "game", "", "game `dir`ectory to read view loop counts from")
	fs.StringVar(&opts.png, "png", "", "render the trace to `file`")
	fs.StringVar(&opts.log, "log", "", "write a debug log to `file`")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging on stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected one scenario, got %d", fs.NArg())
	}

	opts.scenario = fs.Arg(0)
	switch opts.scenario {
	case "jump", "walk", "avoid":
	default:
		return opts, fmt.Errorf("unknown scenario %q", opts.scenario)
	}

	v, err := pmachine.ParseVersion(version)
	if err != nil {
		return opts, err
	}
	opts.version = v
	opts.gravity = int16(gravity)
	opts.speed = int16(speed)
	opts.view = int16(view)
	return opts, nil
}
