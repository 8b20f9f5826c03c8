package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stackscan",
	Short: "Scan Stacks addresses for balances above a threshold",
	Long: `Stackscan reads a JSON file mapping names to Stacks wallet addresses,
looks up each address's STX balance on the Stacks node API, and reports
the addresses holding more than a minimum balance.

Features:
  • Two-tier lookup (extended address endpoint with accounts fallback)
  • Hex and decimal balance decoding
  • Token-bucket request throttling
  • Pretty-printed JSON results file
  • One bad address never aborts the batch

Examples:
  stackscan check                          # Scan stacks_addresses.json
  stackscan check --threshold 10           # Require more than 10 STX
  stackscan check --input wallets.json     # Scan a different file
  stackscan check --config stackscan.yaml  # Load endpoints and cadence from yaml`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Stackscan v%s\n", version)
	},
}
