package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/rapport/internal/presentation/tui"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMarkdown(t *testing.T) {
	md := tui.TableMarkdown(domain.Transitions(), "Joe")
	lines := strings.Split(strings.TrimSpace(md), "\n")

	require.Len(t, lines, 2+len(domain.Transitions()))
	assert.Equal(t, "| first_meeting | greet | hi, never seen each other before, I'm Joe | acquainted |", lines[2])
	assert.Equal(t, "| acquainted | farewell | bye, met each other earlier, I'm Joe | acquainted |", lines[5])
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer()
	require.NoError(t, err)

	out, err := render("# transitions\n\nhello rapport\n")
	require.NoError(t, err)
	assert.Contains(t, out, "hello rapport")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|")
}
