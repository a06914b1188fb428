package builder

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

type step struct {
	id   int64
	name string
	run  func(ctx context.Context) (*Output, error)
}

func (s *step) ID() int64 {
	return s.id
}

// plan orders build steps. An edge runs from a step to every step that
// depends on it.
type plan struct {
	g     *multi.DirectedGraph
	steps map[string]*step
}

func newPlan() *plan {
	return &plan{
		g:     multi.NewDirectedGraph(),
		steps: map[string]*step{},
	}
}

func (p *plan) add(name string, run func(ctx context.Context) (*Output, error), deps ...string) error {
	if _, ok := p.steps[name]; ok {
		return fmt.Errorf("duplicate step %q", name)
	}

	s := &step{
		id:   int64(len(p.steps)),
		name: name,
		run:  run,
	}
	p.g.AddNode(s)
	p.steps[name] = s

	for _, dep := range deps {
		if err := p.depend(name, dep); err != nil {
			return err
		}
	}
	return nil
}

// depend makes name wait for on.
func (p *plan) depend(name, on string) error {
	s, ok := p.steps[name]
	if !ok {
		return fmt.Errorf("unknown step %q", name)
	}
	dep, ok := p.steps[on]
	if !ok {
		return fmt.Errorf("unknown step %q", on)
	}
	p.g.SetLine(p.g.NewLine(dep, s))
	return nil
}

// levels groups the steps into buckets. Every step's dependencies are in
// an earlier bucket, so the steps of one bucket can run in parallel.
func (p *plan) levels() ([][]*step, error) {
	sorted, err := topo.SortStabilized(p.g, func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) bool {
			return a.ID() < b.ID()
		})
	})
	if err != nil {
		return nil, errors.Join(ErrGraphCycle, err)
	}

	depth := map[int64]int{}
	var buckets [][]*step
	for _, n := range sorted {
		level := 0
		for deps := p.g.To(n.ID()); deps.Next(); {
			if l := depth[deps.Node().ID()] + 1; l > level {
				level = l
			}
		}
		depth[n.ID()] = level

		if level == len(buckets) {
			buckets = append(buckets, nil)
		}
		buckets[level] = append(buckets[level], n.(*step))
	}

	for _, bucket := range buckets {
		slices.SortFunc(bucket, func(a, b *step) bool {
			return a.id < b.id
		})
	}
	return buckets, nil
}

// run executes the plan one bucket at a time with at most jobs steps in
// flight. Outputs are returned in bucket order. The first failure cancels
// the rest of its bucket and stops the plan.
func (p *plan) run(ctx context.Context, jobs int) ([]*Output, error) {
	buckets, err := p.levels()
	if err != nil {
		return nil, err
	}

	var outputs []*Output
	for _, bucket := range buckets {
		g, ctx := errgroup.WithContext(ctx)
		if jobs > 0 {
			g.SetLimit(jobs)
		}

		results := make([]*Output, len(bucket))
		for i, s := range bucket {
			i, s := i, s
			g.Go(func() error {
				out, err := s.run(ctx)
				results[i] = out
				return err
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}

		for _, out := range results {
			if out != nil {
				outputs = append(outputs, out)
			}
		}
	}
	return outputs, nil
}
