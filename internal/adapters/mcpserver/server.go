// Package mcpserver exposes the docking operations as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Name is the implementation name announced to MCP clients.
const Name = "dockq"

const shutdownTimeout = 5 * time.Second

// Service is the subset of the application the tools call into.
type Service interface {
	Rank(ctx context.Context, molecules []string, target string) (domain.Ranking, error)
	Explain(key string) (domain.Explanation, error)
	Interpret(score float64) domain.Interpretation
	Target(id string) (domain.TargetDetails, error)
	Analyze(target string, records []domain.ScoreRecord) domain.Analysis
}

// New builds an MCP server with every docking tool registered.
func New(svc Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compute_docking_scores",
		Description: "Rank molecules by docking score against a protein target, best binder first",
	}, computeHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain",
		Description: "Explain a target, score category, process or molecular property",
	}, explainHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interpret_score",
		Description: "Place a docking score in its binding-affinity category",
	}, interpretHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_target_info",
		Description: "Describe a protein target and its known drugs",
	}, targetHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_docking_results",
		Description: "Summarise a set of docking scores and recommend next steps",
	}, analyzeHandler(svc))

	return server
}

// RunStdio serves the tools over stdin and stdout until ctx is cancelled or
// the client disconnects.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return zerr.Wrap(err, "mcp stdio session failed")
	}
	return nil
}

// Handler serves the tools over the streamable HTTP transport.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// RunHTTP serves the tools over streamable HTTP on addr until ctx is cancelled.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string, log ports.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving MCP on " + addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "mcp server failed"), "addr", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down mcp server")
		}
		return nil
	}
}
