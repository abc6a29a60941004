// Package mcpserver exposes the embedded questionnaires over the Model
// Context Protocol so that assistants can list variants and score answers.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/quitcheck/internal/logger"
)

const instructions = `quitcheck scores resignation-readiness questionnaires.
Call list_variants to see the available questionnaires, describe_variant to
read a variant's questions and thresholds, and score_answers with one letter
(A-D) per question to classify a set of answers.`

// New creates the MCP server with every tool registered.
func New(version string, log logger.Logger) *server.MCPServer {
	if log == nil {
		log = logger.Nop()
	}

	s := server.NewMCPServer(
		"quitcheck",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	list := NewListVariantsTool()
	s.AddTool(list.Definition(), list.Handle)

	describe := NewDescribeVariantTool()
	s.AddTool(describe.Definition(), describe.Handle)

	score := NewScoreAnswersTool(log)
	s.AddTool(score.Definition(), score.Handle)

	return s
}

// ServeStdio runs s on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
