package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Job is one maze to solve in a batch.
type Job struct {
	Name string
	Text string
}

// JobsFromFiles reads each path into a Job named after the file.
func JobsFromFiles(paths ...string) ([]Job, error) {
	jobs := make([]Job, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("engine: read %s: %w", p, err)
		}
		jobs = append(jobs, Job{Name: filepath.Base(p), Text: string(data)})
	}

	return jobs, nil
}

// RunBatch solves jobs in parallel with at most Config().WorkerCount()
// goroutines. Each solve owns its own table and frontier; only the result
// slot for its index is written. Reports are returned in job order.
//
// The first failing job cancels the batch and its error is returned.
// Cancelling ctx stops jobs that have not started yet.
func (e *Engine) RunBatch(ctx context.Context, jobs []Job) ([]*Report, error) {
	reports := make([]*Report, len(jobs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.cfg.WorkerCount())

	e.log.WithFields(logrus.Fields{
		"jobs":    len(jobs),
		"workers": e.cfg.WorkerCount(),
	}).Debug("batch started")

	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			rep, err := e.SolveText(job.Name, job.Text)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
