package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gogate/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gogate",
	Short: "Cantilever Slide Gate Structural Design Tool",
	Long: `gogate - Go Cantilever Slide Gate Designer

A CLI tool for the structural design of cantilever slide gates.

This tool helps structural engineers perform:
  - ASTM steel grade selection and validation
  - HSS frame section property calculation
  - Load combination evaluation (service and LRFD)
  - Cantilever frame analysis (moment, shear, deflection)
  - Complete gate design with counterweight and track sizing

All calculations use metric units (N, mm, MPa).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gogate v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Cantilever Slide Gate Designer                       ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the structural design of cantilever slide gates")
		fmt.Println("  including frame verification and counterweight sizing.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • ASTM steel material table and grade validation")
		fmt.Println("    • Rectangular HSS section property calculation")
		fmt.Println("    • Governing load combination evaluation")
		fmt.Println("    • Cantilever beam analysis with diagrams")
		fmt.Println("    • Complete gate design with reports")
		fmt.Println()
		fmt.Println("  Use 'gogate --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
