// Package server provides the MCP server implementation for jsoncstrip.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seanhalberthal/jsoncstrip/internal/stripper"
	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

// strip holds the stripper instance for tool handlers.
var strip *stripper.Stripper

// Run starts the MCP server with the given stripper.
func Run(s *stripper.Stripper) {
	strip = s

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "jsoncstrip",
			Version: types.Version,
		},
		nil,
	)

	registerTools(server)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jsonc_status",
		Description: "Get version, supported comment forms, and active configuration",
	}, handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "jsonc_strip",
		Description: "Replace comments in JSON-with-comments content with spaces so it can be parsed as strict JSON",
	}, handleStrip)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "jsonc_check",
		Description: "Check a file or directory of JSON-with-comments files for unterminated strings, unterminated comments and stray slashes",
	}, handleCheck)
}

// Tool input/output types

type StatusInput struct{}

type StatusOutput struct {
	types.StatusResponse
}

type StripInput struct {
	Content string `json:"content" jsonschema:"description=JSON-with-comments text to strip"`
}

type StripOutput struct {
	types.StripResult
}

type CheckInput struct {
	Path      string `json:"path" jsonschema:"description=File or directory to check"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"description=Check files in subdirectories"`
	Validate  *bool  `json:"validate,omitempty" jsonschema:"description=Also require the stripped output to be valid JSON (defaults to config)"`
}

type CheckOutput struct {
	types.CheckResult
}

// Tool handlers

func handleStatus(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[StatusInput]) (*mcp.CallToolResultFor[StatusOutput], error) {
	status := StatusOutput{
		StatusResponse: types.StatusResponse{
			Version:           types.Version,
			SupportedComments: types.SupportedComments,
			Config:            strip.Config().Info(),
		},
	}

	return &mcp.CallToolResultFor[StatusOutput]{StructuredContent: status}, nil
}

func handleStrip(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[StripInput]) (*mcp.CallToolResultFor[StripOutput], error) {
	result, err := strip.StripString(params.Arguments.Content)
	if err != nil {
		return &mcp.CallToolResultFor[StripOutput]{IsError: true}, err
	}

	return &mcp.CallToolResultFor[StripOutput]{StructuredContent: StripOutput{StripResult: *result}}, nil
}

func handleCheck(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[CheckInput]) (*mcp.CallToolResultFor[CheckOutput], error) {
	input := params.Arguments
	if input.Path == "" {
		return &mcp.CallToolResultFor[CheckOutput]{IsError: true}, fmt.Errorf("path is required")
	}

	validate := strip.Config().Validate
	if input.Validate != nil {
		validate = *input.Validate
	}

	result, err := strip.Check(ctx, stripper.CheckOptions{
		Path:      input.Path,
		Recursive: input.Recursive,
		Validate:  validate,
	})
	if err != nil {
		return &mcp.CallToolResultFor[CheckOutput]{IsError: true}, err
	}

	return &mcp.CallToolResultFor[CheckOutput]{StructuredContent: CheckOutput{CheckResult: *result}}, nil
}
