package annotate

import (
	"context"

	"launchnote/internal/launch"
	"launchnote/internal/rules"
)

// PayloadAnnotator sets payload_mass_kg on records whose mass is absent or zero.
type PayloadAnnotator struct {
	rules *rules.RuleSet
}

var _ Annotator = (*PayloadAnnotator)(nil)

// NewPayloadAnnotator returns an annotator backed by the embedded payload table.
func NewPayloadAnnotator() *PayloadAnnotator {
	return &PayloadAnnotator{rules: rules.PayloadMasses()}
}

func (a *PayloadAnnotator) Name() string { return NamePayloadMass }

// Annotate fills missing masses, then counts the records still without one.
func (a *PayloadAnnotator) Annotate(ctx context.Context, c launch.Collection) (Result, error) {
	tg := target{
		needs: (*launch.Record).MissingPayloadMass,
		set:   (*launch.Record).SetPayloadMass,
	}
	res, err := apply(ctx, newLogger(), NamePayloadMass, a.rules, tg, c)
	if err != nil {
		return res, err
	}
	for _, r := range c {
		if r.MissingPayloadMass() {
			res.Missing++
		}
	}
	res.WithValue = res.Loaded - res.Missing
	return res, nil
}
