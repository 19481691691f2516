// Command teamarr is the Teamarr EPG generator CLI and server.
//
// Usage:
//
//	teamarr generate
//	teamarr refresh soccer
//	teamarr serve
//	teamarr migrate up
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	_ = godotenv.Load(".env")
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "teamarr",
		Short: "Teamarr XMLTV EPG generator for sports team channels",
	}

	root.AddCommand(generateCmd())
	root.AddCommand(refreshCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
