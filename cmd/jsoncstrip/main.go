// Package main implements the jsoncstrip entry point.
package main

import (
	"flag"
	"log"

	"github.com/seanhalberthal/jsoncstrip/internal/cli"
	"github.com/seanhalberthal/jsoncstrip/internal/config"
	"github.com/seanhalberthal/jsoncstrip/internal/server"
	"github.com/seanhalberthal/jsoncstrip/internal/stripper"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "Run as MCP server")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s := stripper.New(cfg)

	if *mcpMode {
		server.Run(s)
		return
	}

	cli.Run(s, flag.Args())
}
