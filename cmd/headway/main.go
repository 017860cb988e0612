// Command headway solves turn-penalized mazes and reports, per maze, the
// minimum score (part 1) and the number of cells on any optimal path (part 2).
//
// Usage:
//
//	headway [-config headway.yaml] [-log-level debug] [-render] maze.txt...
//	headway -write-config > headway.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/headway/config"
	"github.com/katalvlaran/headway/engine"
	"github.com/katalvlaran/headway/maze"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("headway", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file (HEADWAY_* env vars override)")
	level := fs.String("log-level", "", "log level, overrides config")
	render := fs.Bool("render", false, "print each maze with optimal cells marked 'O'")
	writeCfg := fs.Bool("write-config", false, "print the effective config as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *level != "" {
		cfg.LogLevel = *level
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *writeCfg {
		return cfg.WriteYAML(out)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("headway: no maze files given")
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Level())

	e, err := engine.New(cfg, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	jobs, err := engine.JobsFromFiles(fs.Args()...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	reports, err := e.RunBatch(ctx, jobs)
	if err != nil {
		return err
	}
	for i, rep := range reports {
		fmt.Fprintf(out, "== %s (%dx%d)\n", rep.Name, rep.Height, rep.Width)
		if !rep.Reachable {
			fmt.Fprintln(out, "No path found")
			continue
		}
		fmt.Fprintf(out, "Part 1: %d\n", rep.MinScore)
		fmt.Fprintf(out, "Part 2: %d\n", rep.Cells)
		if *render {
			g, err := maze.Parse(jobs[i].Text)
			if err != nil {
				return err
			}
			drawn, err := engine.Render(g, rep)
			if err != nil {
				return err
			}
			fmt.Fprint(out, drawn)
		}
	}
	fmt.Fprintf(out, "\nTotal duration: %v\n", time.Since(began))

	return nil
}
