package bench

import (
	"context"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/dimacs"
)

// Row is one instance × algorithm measurement. Err is non-nil when the
// combination failed (unreadable instance, invalid coloring); failed
// rows carry no Colors/Elapsed values worth reading.
type Row struct {
	Instance  string
	Algorithm coloring.Algorithm
	Vertices  int
	Edges     int
	Colors    int
	Elapsed   time.Duration
	Err       error
}

// Runner executes a suite. Construct with NewRunner.
type Runner struct {
	cfg   *Config
	algos []coloring.Algorithm
}

// NewRunner validates the suite config and resolves its algorithm list.
// Returns ErrNoInstances for an empty suite or the coloring package's
// ErrUnsupportedAlgorithm for an unknown name.
func NewRunner(cfg *Config) (*Runner, error) {
	if len(cfg.Instances) == 0 {
		return nil, ErrNoInstances
	}
	algos, err := cfg.algorithms()
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, algos: algos}, nil
}

// Run executes every instance × algorithm combination sequentially and
// returns one Row per combination, in suite order.
//
// A failed combination is logged and recorded but never stops the rest;
// only cancellation of ctx aborts the whole suite. Every successful
// coloring is validated against its graph before being reported.
func (r *Runner) Run(ctx context.Context) ([]Row, error) {
	rows := make([]Row, 0, len(r.cfg.Instances)*len(r.algos))

	for _, name := range r.cfg.Instances {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		path := r.cfg.instancePath(name)
		klog.Infof("bench: loading %s", path)

		g, err := dimacs.ParseFile(path)
		if err != nil {
			klog.Errorf("bench: %s: %v (skipping)", name, err)
			// One failed row per algorithm keeps the report rectangular.
			for _, algo := range r.algos {
				rows = append(rows, Row{Instance: name, Algorithm: algo, Err: err})
			}
			continue
		}
		klog.Infof("bench: %s: %d vertices, %d edges", name, g.VertexCount(), g.EdgeCount())

		for _, algo := range r.algos {
			if err = ctx.Err(); err != nil {
				return rows, err
			}

			row := Row{
				Instance:  name,
				Algorithm: algo,
				Vertices:  g.VertexCount(),
				Edges:     g.EdgeCount(),
			}

			start := time.Now()
			res, runErr := coloring.Color(g, algo, coloring.Options{Ctx: ctx})
			row.Elapsed = time.Since(start)

			switch {
			case runErr != nil:
				// Cancellation surfaces on the next ctx check above;
				// anything else is a per-combination failure.
				row.Err = runErr
				klog.Errorf("bench: %s/%s: %v", name, algo, runErr)
			default:
				if vErr := res.Validate(g); vErr != nil {
					row.Err = vErr
					klog.Errorf("bench: %s/%s: %v", name, algo, vErr)
					break
				}
				row.Colors = res.NumColors
				klog.Infof("bench: %s/%s: %d colors in %s", name, algo, row.Colors, row.Elapsed)
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}
