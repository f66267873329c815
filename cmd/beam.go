package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Cantilever beam analysis",
	Long: `Analyze a cantilever beam: position-resolved bending moment, shear
and deflection distributions with stress and deflection adequacy checks.

The beam is fixed at position 0 and free at the far end. All loads act in
one transverse direction.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
