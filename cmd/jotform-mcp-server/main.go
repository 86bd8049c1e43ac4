// Command jotform-mcp-server runs an MCP server exposing the JotForm API as
// tools, over stdio or streamable HTTP.
package main

import (
	"net/http"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/config"
	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
	"github.com/The-AI-Workshops/jotform-mcp-server/log"
	"github.com/The-AI-Workshops/jotform-mcp-server/search"
	"github.com/The-AI-Workshops/jotform-mcp-server/tools"
)

const (
	serverName    = "jotform-mcp-server"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	client := jotform.NewClient(jotform.ClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Debug:   cfg.Debug,
	})
	log.Infof("JotForm API client initialized with base URL: %s, debug: %v", cfg.BaseURL, cfg.Debug)

	searcher := search.New(client,
		search.WithAccountingMonthStartDay(cfg.AccountingMonthStartDay),
		search.WithConcurrency(cfg.SearchConcurrency),
	)
	entries := tools.All(client, searcher)

	switch cfg.Transport {
	case config.TransportStdio:
		serveStdio(entries)
	default:
		serveHTTP(cfg, entries)
	}
}

func serveStdio(entries []tools.Entry) {
	server := mcp.NewStdioServer(serverName, serverVersion,
		mcp.WithStdioServerLogger(mcp.GetDefaultLogger()),
	)
	for _, e := range entries {
		server.RegisterTool(e.Tool, e.Handler)
	}
	log.Infof("starting %s on stdio with %d tools", serverName, len(entries))
	if err := server.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func serveHTTP(cfg *config.Config, entries []tools.Entry) {
	server := mcp.NewServer(serverName, serverVersion,
		mcp.WithServerAddress(cfg.Addr()),
		mcp.WithServerPath("/mcp"),
	)
	for _, e := range entries {
		server.RegisterTool(e.Tool, e.Handler)
	}
	log.Infof("starting %s on http://%s/mcp with %d tools", serverName, cfg.Addr(), len(entries))
	if err := http.ListenAndServe(cfg.Addr(), server.HTTPHandler()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
