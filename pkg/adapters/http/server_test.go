package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/rapport/internal/logging"
	"github.com/aretw0/rapport/internal/metrics"
	"github.com/aretw0/rapport/pkg/adapters/file"
	"github.com/aretw0/rapport/pkg/adapters/memory"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() http.Handler {
	col := metrics.New()
	mgr := session.NewManager(memory.NewStore(), session.WithHooks(col.Hooks()))
	return NewHandler(mgr, logging.NewNop(), col.Handler())
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestActEndpoints_Scenario(t *testing.T) {
	h := newTestHandler()

	steps := []struct {
		path    string
		message string
	}{
		{"/people/joe/greet", "hi, never seen each other before, I'm Joe"},
		{"/people/joe/farewell", "bye, met each other earlier, I'm Joe"},
		{"/people/joe/greet", "hi, met each other earlier, I'm Joe"},
		{"/people/joe/reset", ""},
		{"/people/joe/farewell", "bye, never seen each other before, I'm Joe"},
		{"/people/joe/greet", "hi, met each other earlier, I'm Joe"},
	}

	for _, step := range steps {
		rec := do(t, h, http.MethodPost, step.path)
		require.Equal(t, http.StatusOK, rec.Code, step.path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		if step.message == "" {
			assert.Equal(t, "first_meeting", body["state"])
			continue
		}
		assert.Equal(t, step.message, body["message"])
		assert.Equal(t, "acquainted", body["to"])
	}
}

func TestGetPerson(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodGet, "/people/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, h, http.MethodPost, "/people/ann/greet")
	rec = do(t, h, http.MethodGet, "/people/ann")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"ann","name":"Joe","state":"acquainted"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/people")
	assert.JSONEq(t, `["ann"]`, rec.Body.String())
}

func TestTransitions(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet, "/transitions")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 4)
	assert.Equal(t, "hi, never seen each other before, I'm %s", rows[0].Template)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler()
	do(t, h, http.MethodPost, "/people/joe/greet")

	rec := do(t, h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rapport_actions_total{action="greet",state="first_meeting"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodOptions, "/people/joe/greet")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

// rejectingManager fails every call the way a store fails on an unusable ID.
type rejectingManager struct{ err error }

func (m rejectingManager) Act(context.Context, string, domain.Action) (session.Outcome, error) {
	return session.Outcome{}, m.err
}

func (m rejectingManager) Reset(context.Context, string) (domain.Snapshot, error) {
	return domain.Snapshot{}, m.err
}

func (m rejectingManager) Get(context.Context, string) (domain.Snapshot, error) {
	return domain.Snapshot{}, m.err
}

func (m rejectingManager) List(context.Context) ([]string, error) { return nil, m.err }

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		errorLog bool
	}{
		{"invalid id", fmt.Errorf("load: %w: ..", file.ErrInvalidID), http.StatusBadRequest, false},
		{"unknown action", fmt.Errorf("%w: 9", domain.ErrUnknownAction), http.StatusBadRequest, false},
		{"not found", fmt.Errorf("%w: joe", domain.ErrPersonNotFound), http.StatusNotFound, false},
		{"storage", errors.New("disk full"), http.StatusInternalServerError, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			h := NewHandler(rejectingManager{err: tc.err}, logging.NewWithWriter(&logs, slog.LevelInfo), nil)

			for _, req := range []struct{ method, path string }{
				{http.MethodPost, "/people/x/greet"},
				{http.MethodPost, "/people/x/reset"},
				{http.MethodGet, "/people/x"},
			} {
				rec := do(t, h, req.method, req.path)
				assert.Equal(t, tc.status, rec.Code, req.path)
				assert.Contains(t, rec.Body.String(), tc.err.Error())
			}
			assert.Equal(t, tc.errorLog, strings.Contains(logs.String(), "level=ERROR"))
		})
	}
}
