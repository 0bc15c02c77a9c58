package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "civic-server",
	Short: "Civic issue reporting and volunteer team coordination server",
	Long: `civic-server runs the HTTP API where citizens report local issues and
volunteer teams claim and resolve them.

Configuration is read from config.yaml (., ./configs or /etc/civicteams),
an optional .env file and CIVIC_* environment variables.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
