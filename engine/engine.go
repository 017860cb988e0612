// Package engine wires the maze, dijkstra and optimal packages into a single
// parse → solve → reconstruct pipeline and runs it over batches of mazes.
//
// The reconstructor is only invoked when End is reachable; an unreachable
// End yields a Report with Reachable == false and no error.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/headway/config"
	"github.com/katalvlaran/headway/dijkstra"
	"github.com/katalvlaran/headway/maze"
	"github.com/katalvlaran/headway/optimal"
)

// ErrNilReport is returned by Render when no report is supplied.
var ErrNilReport = errors.New("engine: report is nil")

// Report is the outcome of solving one maze.
type Report struct {
	Name          string
	Width, Height int
	Reachable     bool
	MinScore      dijkstra.Score
	Cells         int
	Optimal       optimal.PositionSet
	EndStates     []maze.State
	Settled       int
	Elapsed       time.Duration
}

// Engine solves mazes with one fixed configuration. It holds no per-solve
// state and is safe for concurrent use.
type Engine struct {
	cfg     config.Config
	heading maze.Heading
	opts    []dijkstra.Option
	log     logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine logs to l. By default logs are discarded.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New validates cfg and builds an Engine.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return nil, err
	}
	heading, err := cfg.Heading()
	if err != nil {
		return nil, err
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	e := &Engine{
		cfg:     cfg,
		heading: heading,
		opts:    solverOpts,
		log:     quiet,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }

// SolveText parses text and solves it. name labels logs and the Report.
func (e *Engine) SolveText(name, text string) (*Report, error) {
	g, err := maze.Parse(text)
	if err != nil {
		e.log.WithField("maze", name).WithError(err).Warn("parse failed")
		return nil, fmt.Errorf("engine: parse %s: %w", name, err)
	}

	return e.SolveGrid(name, g)
}

// SolveGrid solves g from its Start tile facing the configured heading.
func (e *Engine) SolveGrid(name string, g *maze.Grid) (*Report, error) {
	log := e.log.WithFields(logrus.Fields{
		"maze":   name,
		"width":  g.Width(),
		"height": g.Height(),
	})
	began := time.Now()

	// 1) Shortest-path search.
	res, err := dijkstra.Solve(g, maze.State{Pos: g.Start(), Heading: e.heading}, e.opts...)
	if err != nil {
		return nil, fmt.Errorf("engine: solve %s: %w", name, err)
	}
	rep := &Report{
		Name:      name,
		Width:     g.Width(),
		Height:    g.Height(),
		Reachable: res.Found,
		Settled:   res.Settled,
	}
	if !res.Found {
		rep.Elapsed = time.Since(began)
		log.WithField("settled", res.Settled).Info("end unreachable")
		return rep, nil
	}
	log.WithFields(logrus.Fields{
		"min_score": res.MinScore,
		"ends":      len(res.EndStates),
		"settled":   res.Settled,
	}).Debug("search settled")

	// 2) Optimal-path union.
	cells, err := optimal.Cells(res.Table, res.EndStates)
	if err != nil {
		return nil, fmt.Errorf("engine: reconstruct %s: %w", name, err)
	}
	rep.MinScore = res.MinScore
	rep.EndStates = res.EndStates
	rep.Optimal = cells
	rep.Cells = cells.Len()
	rep.Elapsed = time.Since(began)

	log.WithFields(logrus.Fields{
		"min_score": rep.MinScore,
		"cells":     rep.Cells,
		"elapsed":   rep.Elapsed,
	}).Info("maze solved")

	return rep, nil
}

// Render draws g with every optimal-path cell of rep marked 'O'.
func Render(g *maze.Grid, rep *Report) (string, error) {
	if rep == nil {
		return "", ErrNilReport
	}

	return g.Render(func(p maze.Position) byte {
		if rep.Optimal.Contains(p) {
			return 'O'
		}
		return 0
	}), nil
}
