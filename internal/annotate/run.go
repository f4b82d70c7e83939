package annotate

import (
	"context"
	"fmt"

	"launchnote/internal/launch"
)

// ByName returns the annotator registered under name.
func ByName(name string) (Annotator, error) {
	switch name {
	case NameCost:
		return NewCostAnnotator(), nil
	case NamePayloadMass:
		return NewPayloadAnnotator(), nil
	}
	return nil, fmt.Errorf("unknown annotator %q", name)
}

// All returns every annotator in reporting order.
func All() []Annotator {
	return []Annotator{NewCostAnnotator(), NewPayloadAnnotator()}
}

// RunAll runs the annotators in order over the same collection. A record that
// gains several fields gets them in annotator order, so the saved document is
// the same on every run.
func RunAll(ctx context.Context, c launch.Collection, as ...Annotator) ([]Result, error) {
	results := make([]Result, 0, len(as))
	for _, a := range as {
		res, err := a.Annotate(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%s pass: %w", a.Name(), err)
		}
		results = append(results, res)
	}
	return results, nil
}
