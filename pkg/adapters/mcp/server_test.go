package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/rapport/pkg/adapters/memory"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Tools(t *testing.T) {
	s := NewServer(session.NewManager(memory.NewStore()))
	ctx := context.Background()
	args := map[string]interface{}{"person_id": "joe"}

	res, err := s.actHandler(domain.Greet)(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, "hi, never seen each other before, I'm Joe", res.Message)
	assert.Equal(t, "first_meeting", res.From)
	assert.Equal(t, "acquainted", res.To)

	res, err = s.actHandler(domain.Farewell)(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, "bye, met each other earlier, I'm Joe", res.Message)

	got, err := s.handleGet(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, "acquainted", got.State)

	got, err = s.handleReset(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, "first_meeting", got.State)
}

func TestServer_MissingPersonID(t *testing.T) {
	s := NewServer(session.NewManager(memory.NewStore()))
	_, err := s.actHandler(domain.Greet)(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)
}

func TestServer_GetUnknown(t *testing.T) {
	s := NewServer(session.NewManager(memory.NewStore()))
	_, err := s.handleGet(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"person_id": "ghost"})
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}

func TestTransitionsJSON(t *testing.T) {
	data, err := transitionsJSON()
	require.NoError(t, err)

	var rows []transitionRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, transitionRow{
		From:     "acquainted",
		Action:   "farewell",
		Template: "bye, met each other earlier, I'm %s",
		Next:     "acquainted",
	}, rows[3])
}
