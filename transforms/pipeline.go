// SPDX-License-Identifier: MIT
// Package transforms — fixed-order pipeline composition.
//
// A Pipeline is a named sequence of steps applied left to right. It stops
// at the first failing step and wraps the error with the step's name so
// the caller can locate the offender without string matching the cause.

package transforms

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/toplift/graph"
)

// Step pairs a Transform with a stable name for error context and logging.
type Step struct {
	Name string
	Fn   Transform
}

// Pipeline applies steps in fixed order. The zero value is a no-op.
type Pipeline struct {
	steps  []Step
	logger *zap.Logger
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger attaches a zap logger for per-step progress reporting.
// Panics on nil (programmer error); the default is zap.NewNop().
func WithLogger(l *zap.Logger) PipelineOption {
	if l == nil {
		panic("transforms: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline assembles a pipeline from the given steps.
// Complexity: O(len(steps)).
func NewPipeline(steps []Step, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{steps: append([]Step(nil), steps...), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply runs every step in order on g and returns the final graph.
// The input graph is never mutated; each step produces (or passes through)
// its own value. First error wins and is wrapped with the step name.
func (p *Pipeline) Apply(g *graph.Graph) (*graph.Graph, error) {
	cur := g
	for _, s := range p.steps {
		next, err := s.Fn(cur)
		if err != nil {
			return nil, fmt.Errorf("Pipeline: step %q: %w", s.Name, err)
		}
		p.logger.Debug("transform applied",
			zap.String("step", s.Name),
			zap.Int("nodes", next.NumNodes()),
			zap.Int("edges", next.NumEdges()),
		)
		cur = next
	}

	return cur, nil
}
