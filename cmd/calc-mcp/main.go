package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/console"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

func main() {
	var (
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		consoleMode    = flag.Bool("console", false, "Run an interactive calculator on the terminal instead of the MCP server")
		defaultSession = flag.String("session", types.DefaultSession, "Calculator session used when a tool call names none")
	)
	flag.Parse()

	config := types.Config{
		LogLevel:       *logLevel,
		Console:        *consoleMode,
		DefaultSession: *defaultSession,
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Logs go to stderr; stdout carries MCP messages
	level, _ := types.ParseLogLevel(config.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config); err != nil {
		slog.Error("Calculator stopped with an error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config types.Config) error {
	if config.Console {
		memory := calculator.NewMemory()
		pad := keypad.New(calculator.NewState(), memory)
		return console.New(pad, memory, os.Stdin, os.Stdout).Run(ctx)
	}

	return server.NewCalculatorServer(config).Serve(ctx)
}
