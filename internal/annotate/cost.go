package annotate

import (
	"context"

	"launchnote/internal/launch"
	"launchnote/internal/rules"
)

// CostAnnotator sets launch_cost_usd_millions on records that lack a cost.
type CostAnnotator struct {
	rules *rules.RuleSet
}

var _ Annotator = (*CostAnnotator)(nil)

// NewCostAnnotator returns an annotator backed by the embedded cost table.
func NewCostAnnotator() *CostAnnotator {
	return &CostAnnotator{rules: rules.Costs()}
}

func (a *CostAnnotator) Name() string { return NameCost }

// Annotate fills missing costs, then reports how many records carry a cost
// and the total over the whole collection.
func (a *CostAnnotator) Annotate(ctx context.Context, c launch.Collection) (Result, error) {
	tg := target{
		needs: func(r *launch.Record) bool { return !r.HasCost() },
		set:   (*launch.Record).SetCost,
	}
	res, err := apply(ctx, newLogger(), NameCost, a.rules, tg, c)
	if err != nil {
		return res, err
	}
	for _, r := range c {
		if r.HasCost() {
			res.WithValue++
		}
		if v, ok := r.Cost(); ok {
			res.Total += v
		}
	}
	res.Missing = res.Loaded - res.WithValue
	return res, nil
}
