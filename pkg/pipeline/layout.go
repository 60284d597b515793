package pipeline

import (
	"encoding/json"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/project"
	"github.com/MrToKa/traylay/pkg/tray"
)

// ComputePlan lays out one tray of the project.
func ComputePlan(p *project.Project, trayName string, opts layout.Options) (*layout.Plan, error) {
	t, ok := p.Tray(trayName)
	if !ok {
		return nil, errors.New(errors.ErrCodeTrayNotFound, "tray %q not in project %s", trayName, p.Name)
	}
	bundles := tray.BuildBundles(p.Cables(trayName))
	return layout.Compute(t, bundles, opts), nil
}

// trayNames resolves the tray selection: a named tray must exist, an
// empty selection means every tray in project order.
func trayNames(p *project.Project, selected string) ([]string, error) {
	if selected != "" {
		if _, ok := p.Tray(selected); !ok {
			return nil, errors.New(errors.ErrCodeTrayNotFound, "tray %q not in project %s", selected, p.Name)
		}
		return []string{selected}, nil
	}
	names := make([]string, len(p.Trays))
	for i, t := range p.Trays {
		names[i] = t.Name
	}
	return names, nil
}

// marshalPlan serializes a plan for caching and the JSON output format.
func marshalPlan(p *layout.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal plan")
	}
	return data, nil
}

func unmarshalPlan(data []byte) (*layout.Plan, error) {
	var p layout.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal plan")
	}
	return &p, nil
}
