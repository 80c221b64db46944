package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/rapport"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TransitionsURI is the resource exposing the transition table.
const TransitionsURI = "rapport://transitions"

// ActResponse is the structured result of greet and farewell.
type ActResponse struct {
	PersonID string `json:"person_id" jsonschema_description:"The person that acted"`
	Message  string `json:"message" jsonschema_description:"The line the person said"`
	From     string `json:"from" jsonschema_description:"State before the action"`
	To       string `json:"to" jsonschema_description:"State after the action"`
}

// PersonResponse is the structured result of get_state and reset_state.
type PersonResponse struct {
	PersonID string `json:"person_id" jsonschema_description:"The person ID"`
	Name     string `json:"name" jsonschema_description:"Display name"`
	State    string `json:"state" jsonschema_description:"Current relationship state"`
}

// Manager is the subset of session.Manager exposed as tools.
type Manager interface {
	Act(ctx context.Context, personID string, action domain.Action) (session.Outcome, error)
	Reset(ctx context.Context, personID string) (domain.Snapshot, error)
	Get(ctx context.Context, personID string) (domain.Snapshot, error)
}

// Server exposes a session.Manager as an MCP Server.
type Server struct {
	manager   Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(manager Manager) *Server {
	s := &Server{
		manager:   manager,
		mcpServer: server.NewMCPServer("rapport-mcp", strings.TrimSpace(rapport.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	personArg := mcp.WithString("person_id", mcp.Required(), mcp.Description("ID of the person"))

	s.mcpServer.AddTool(mcp.NewTool("greet",
		mcp.WithDescription("Make the person say hi. The reply depends on whether they met before."),
		personArg,
		mcp.WithOutputSchema[ActResponse](),
	), mcp.NewStructuredToolHandler(s.actHandler(domain.Greet)))

	s.mcpServer.AddTool(mcp.NewTool("farewell",
		mcp.WithDescription("Make the person say bye. The reply depends on whether they met before."),
		personArg,
		mcp.WithOutputSchema[ActResponse](),
	), mcp.NewStructuredToolHandler(s.actHandler(domain.Farewell)))

	s.mcpServer.AddTool(mcp.NewTool("reset_state",
		mcp.WithDescription("Forget every previous meeting. Says nothing."),
		personArg,
		mcp.WithOutputSchema[PersonResponse](),
	), mcp.NewStructuredToolHandler(s.handleReset))

	s.mcpServer.AddTool(mcp.NewTool("get_state",
		mcp.WithDescription("Read the person's current relationship state."),
		personArg,
		mcp.WithOutputSchema[PersonResponse](),
	), mcp.NewStructuredToolHandler(s.handleGet))
}

func personID(args map[string]interface{}) (string, error) {
	id, _ := args["person_id"].(string)
	if id == "" {
		return "", fmt.Errorf("person_id is required")
	}
	return id, nil
}

func (s *Server) actHandler(action domain.Action) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (ActResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ActResponse, error) {
		id, err := personID(args)
		if err != nil {
			return ActResponse{}, err
		}
		out, err := s.manager.Act(ctx, id, action)
		if err != nil {
			return ActResponse{}, fmt.Errorf("%s failed: %w", action, err)
		}
		return ActResponse{
			PersonID: id,
			Message:  out.Message,
			From:     out.From.String(),
			To:       out.To.String(),
		}, nil
	}
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PersonResponse, error) {
	id, err := personID(args)
	if err != nil {
		return PersonResponse{}, err
	}
	snap, err := s.manager.Reset(ctx, id)
	if err != nil {
		return PersonResponse{}, fmt.Errorf("reset failed: %w", err)
	}
	return PersonResponse{PersonID: id, Name: snap.Name, State: snap.State.String()}, nil
}

func (s *Server) handleGet(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PersonResponse, error) {
	id, err := personID(args)
	if err != nil {
		return PersonResponse{}, err
	}
	snap, err := s.manager.Get(ctx, id)
	if err != nil {
		return PersonResponse{}, fmt.Errorf("get failed: %w", err)
	}
	return PersonResponse{PersonID: id, Name: snap.Name, State: snap.State.String()}, nil
}

type transitionRow struct {
	From     string `json:"from"`
	Action   string `json:"action"`
	Template string `json:"template"`
	Next     string `json:"next"`
}

func transitionsJSON() ([]byte, error) {
	var rows []transitionRow
	for _, t := range domain.Transitions() {
		rows = append(rows, transitionRow{
			From:     t.From.String(),
			Action:   t.Action.String(),
			Template: t.Reaction.Template,
			Next:     t.Reaction.Next.String(),
		})
	}
	return json.Marshal(rows)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(TransitionsURI, "Transition Table",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := transitionsJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode transitions: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TransitionsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
