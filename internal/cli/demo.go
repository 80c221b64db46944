package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/rapport/pkg/domain"
)

// DemoStep is one scripted call of the canonical scenario.
type DemoStep struct {
	Reset  bool
	Action domain.Action
}

// DemoScript greets, says bye, greets, resets, says bye and greets again.
var DemoScript = []DemoStep{
	{Action: domain.Greet},
	{Action: domain.Farewell},
	{Action: domain.Greet},
	{Reset: true},
	{Action: domain.Farewell},
	{Action: domain.Greet},
}

// RunDemo plays DemoScript on a fresh person named name, writing its lines to w.
func RunDemo(w io.Writer, name string, logger *slog.Logger) domain.State {
	p := domain.NewPerson(
		domain.WithName(name),
		domain.WithOutput(w),
		domain.WithHooks(LoggingHooks(logger)),
	)

	for _, step := range DemoScript {
		if step.Reset {
			p.ResetState()
			continue
		}
		p.Act(step.Action)
	}
	return p.State()
}
