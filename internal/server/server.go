package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    types.Config
}

// NewCalculatorServer creates a new calculator MCP server with its own memory register
func NewCalculatorServer(config types.Config) *CalculatorServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
	)
	sessions := session.NewManager(config.DefaultSession, calculator.NewMemory())

	s := &CalculatorServer{
		mcpServer: mcpServer,
		sessions:  sessions,
		config:    config,
	}
	s.registerTools()

	return s
}

// Serve serves MCP over stdin/stdout until the context is cancelled or stdin closes
func (s *CalculatorServer) Serve(ctx context.Context) error {
	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Listen serves MCP over the given streams
func (s *CalculatorServer) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("Starting calculator MCP server", "name", project.Name, "version", project.Version, "default_session", s.config.DefaultSession)

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Calculator MCP server stopped")
	return nil
}

func (s *CalculatorServer) registerTools() {
	memory := s.sessions.Memory()

	calculateTool := tools.NewCalculateTool()
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	memoryStoreTool := tools.NewMemoryStoreTool(memory)
	s.mcpServer.AddTool(memoryStoreTool.GetTool(), memoryStoreTool.Handle)

	memoryRecallTool := tools.NewMemoryRecallTool(memory)
	s.mcpServer.AddTool(memoryRecallTool.GetTool(), memoryRecallTool.Handle)

	memoryClearTool := tools.NewMemoryClearTool(memory)
	s.mcpServer.AddTool(memoryClearTool.GetTool(), memoryClearTool.Handle)

	memoryAddTool := tools.NewMemoryAddTool(memory)
	s.mcpServer.AddTool(memoryAddTool.GetTool(), memoryAddTool.Handle)

	memorySubtractTool := tools.NewMemorySubtractTool(memory)
	s.mcpServer.AddTool(memorySubtractTool.GetTool(), memorySubtractTool.Handle)

	pressKeysTool := tools.NewPressKeysTool(s.sessions)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	getDisplayTool := tools.NewGetDisplayTool(s.sessions)
	s.mcpServer.AddTool(getDisplayTool.GetTool(), getDisplayTool.Handle)

	clearSessionTool := tools.NewClearSessionTool(s.sessions)
	s.mcpServer.AddTool(clearSessionTool.GetTool(), clearSessionTool.Handle)

	listSessionsTool := tools.NewListSessionsTool(s.sessions)
	s.mcpServer.AddTool(listSessionsTool.GetTool(), listSessionsTool.Handle)
}
