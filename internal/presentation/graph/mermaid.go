package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/rapport/pkg/domain"
)

// GraphOverlay highlights the current state of a person on the diagram.
type GraphOverlay struct {
	CurrentState domain.State
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 from the transition rows.
// Self-loops are kept so every (state, action) cell is visible. The initial
// state gets the [*] entry arrow and a dashed "reset" edge from every other state.
func GenerateMermaid(rows []domain.Transition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", stateID(domain.InitialState)))

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n",
			stateID(row.From), stateID(row.Reaction.Next), row.Action))
	}

	for _, s := range domain.States() {
		if s == domain.InitialState {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s : reset\n", stateID(s), stateID(domain.InitialState)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current\n", stateID(overlay.CurrentState)))
	}

	return sb.String()
}

// stateID turns "first_meeting" into "FirstMeeting".
func stateID(s domain.State) string {
	parts := strings.Split(s.String(), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "")
}
