package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┬ ┬┬ ┬┬┬─┐┌─┐
   ││├─┤└─┐├─┤││││├┬┘├┤
  ─┴┘┴ ┴└─┘┴ ┴└┴┘┴┴└─└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashwire",
		Short: "Reactive layout helpers for live dashboards",
		Long: `Dashwire serves dashboards built from declarative layout helpers.

Layout containers (rows, columns, overlays, hover wrappers, click
modifiers) are bound to observable cells; activation events from the
browser flow over a websocket, and marker-class patches flow back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the dashwire ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
