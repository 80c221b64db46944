package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/rapport/internal/presentation/graph"
	"github.com/aretw0/rapport/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Table Edges",
			contains: []string{
				"stateDiagram-v2",
				"[*] --> FirstMeeting",
				"FirstMeeting --> Acquainted : greet",
				"FirstMeeting --> Acquainted : farewell",
				"Acquainted --> Acquainted : greet",
				"Acquainted --> Acquainted : farewell",
				"Acquainted --> FirstMeeting : reset",
			},
			absent: []string{"classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{CurrentState: domain.Acquainted},
			contains: []string{
				"classDef current",
				"class Acquainted current",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(domain.Transitions(), tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}
