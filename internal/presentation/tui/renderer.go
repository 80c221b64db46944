package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rapport/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// TableMarkdown renders the transition table as a markdown table, substituting name.
func TableMarkdown(rows []domain.Transition, name string) string {
	var sb strings.Builder
	sb.WriteString("| Current state | Action | Message | Next state |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			row.From, row.Action, fmt.Sprintf(row.Reaction.Template, name), row.Reaction.Next))
	}
	return sb.String()
}
