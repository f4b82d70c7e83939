// Package annotate fills estimated launch cost and payload mass into launch
// records from the fixed rule tables.
//
// Both annotators only fill gaps: an existing cost (any truthy value) or a
// nonzero payload mass is never overwritten, so a second pass is a no-op.
package annotate

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"launchnote/internal/launch"
	"launchnote/internal/logging"
	"launchnote/internal/rules"
)

// Annotator names, also used as Result.Annotator.
const (
	NameCost        = "cost"
	NamePayloadMass = "payload_mass"
)

// Annotator runs one estimation pass over a collection, mutating it in place.
type Annotator interface {
	Name() string
	Annotate(ctx context.Context, c launch.Collection) (Result, error)
}

// Result summarizes one pass.
type Result struct {
	Annotator string
	Loaded    int
	Updated   int
	// ByRule counts updated records per rule name.
	ByRule map[string]int

	// Coverage after the pass.
	WithValue int
	Missing   int
	// Total is the sum of all numeric costs, pre-existing included. The
	// payload pass leaves it zero.
	Total float64
}

// target binds an annotator to the record field it fills.
type target struct {
	needs func(*launch.Record) bool
	set   func(*launch.Record, int)
}

func subjectOf(r *launch.Record) rules.Subject {
	return rules.Subject{
		Mission:    r.MissionName(),
		Vehicle:    r.Vehicle(),
		LaunchDate: r.LaunchDate(),
	}
}

// apply runs the first-match pass shared by both annotators. Records are
// matched by a bounded worker group; estimates are then written in collection
// order.
func apply(ctx context.Context, log *slog.Logger, name string, rs *rules.RuleSet, tg target, c launch.Collection) (Result, error) {
	res := Result{Annotator: name, Loaded: len(c), ByRule: make(map[string]int)}

	matched := make([]*rules.Rule, len(c))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range c {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if !tg.needs(r) {
				return nil
			}
			if rule, ok := rs.Match(subjectOf(r)); ok {
				matched[i] = &rule
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	for i, rule := range matched {
		if rule == nil {
			continue
		}
		r := c[i]
		tg.set(r, rule.Value)
		res.Updated++
		res.ByRule[rule.Name]++
		log.Debug("estimate set",
			"index", i, "mission", r.MissionName(), "rule", rule.Name, "field", rs.Field, "value", rule.Value)
	}
	return res, nil
}

func newLogger() *slog.Logger { return logging.New("annotate") }
