package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"stackscan/api"
	"stackscan/checker"
	"stackscan/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a file of addresses for qualifying balances",
	Long: `Check every address in the input file and write those holding more
than the threshold to the output file.

The input file is a JSON object mapping names to Stacks addresses:
  {"alice": "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", "bob": "..."}

The output file maps the qualifying names to their address and STX balance.

Examples:
  stackscan check                        # Defaults: stacks_addresses.json -> qualifying_addresses.json
  stackscan check --threshold 25         # Require more than 25 STX
  stackscan check --output rich.json     # Write results elsewhere`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var (
	inputFlag     string
	outputFlag    string
	thresholdFlag float64
	configFlag    string
)

func init() {
	checkCmd.Flags().StringVar(&inputFlag, "input", "stacks_addresses.json", "input JSON file of name to address pairs")
	checkCmd.Flags().StringVar(&outputFlag, "output", "qualifying_addresses.json", "output JSON file for qualifying addresses")
	checkCmd.Flags().Float64Var(&thresholdFlag, "threshold", 5.0, "minimum balance in STX (strictly exceeded)")
	checkCmd.Flags().StringVar(&configFlag, "config", "", "optional yaml config file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Flags that were set explicitly win over the config file.
	if cmd.Flags().Changed("input") {
		cfg.Files.Input = inputFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Files.Output = outputFlag
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Scan.Threshold = thresholdFlag
	}

	addresses, err := loadAddresses(cfg.Files.Input)
	if err != nil {
		return err
	}

	fmt.Printf("📒 Loaded %d name-address pairs from %s\n", len(addresses), cfg.Files.Input)
	printSample(addresses)

	threshold := formatSTX(cfg.Scan.Threshold)
	fmt.Printf("🔎 Checking %d addresses for balances greater than %s STX...\n", len(addresses), threshold)
	fmt.Println()

	client := api.NewClientWithOptions(cfg.API.BaseURL, cfg.API.AccountsURL, cfg.API.Timeout)
	limiter := rate.NewLimiter(rate.Limit(cfg.Scan.RequestsPerSecond), cfg.Scan.Burst)
	chk := checker.New(client, cfg.Scan.Threshold, limiter)

	bar := progressbar.NewOptions(len(addresses),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Scanning addresses[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)
	chk.Progress = func(res checker.Result) {
		_ = bar.Clear()
		switch {
		case res.Err != nil:
			fmt.Println(color.RedString("❌ %s (%s): %v", res.Name, res.Address, res.Err))
		case res.Qualified:
			fmt.Printf("✅ %s: %s — %s STX\n", res.Name, res.Address, res.Balance)
		default:
			fmt.Printf("   %s: %s — %s STX\n", res.Name, res.Address, res.Balance)
		}
		_ = bar.Add(1)
	}

	results, skipped := chk.Check(cmd.Context(), addresses)
	_ = bar.Finish()
	fmt.Println()

	if err := writeResults(cfg.Files.Output, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	fmt.Printf("💾 Results saved to %s\n", cfg.Files.Output)
	fmt.Println()

	fmt.Printf("🏁 Found %d addresses with more than %s STX\n", len(results), threshold)
	printSkipped(skipped)

	if len(results) == 0 {
		fmt.Println(color.YellowString("No addresses found with balances greater than the minimum threshold."))
		return nil
	}

	fmt.Println()
	fmt.Println("Qualifying addresses and their balances:")
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		record := results[name]
		fmt.Printf("%s: %s - %s STX\n", color.GreenString(name), record.Address, formatSTX(record.Balance))
	}

	return nil
}

// loadAddresses reads the input mapping. A missing or malformed file is fatal
// to the run and reported before any network activity happens.
func loadAddresses(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found: create a JSON file mapping names to Stacks addresses", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var addresses map[string]string
	if err := json.Unmarshal(data, &addresses); err != nil {
		return nil, fmt.Errorf("%s is not a valid JSON object of name to address pairs: %w", path, err)
	}

	return addresses, nil
}

// writeResults writes the qualifying mapping pretty-printed.
func writeResults(path string, results map[string]checker.Record) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// printSample shows up to three entries so a wrong input file is obvious early.
func printSample(addresses map[string]string) {
	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 3 {
		names = names[:3]
	}

	fmt.Println("Sample of loaded data:")
	for _, name := range names {
		fmt.Printf("   %s: %s\n", name, addresses[name])
	}
}

func printSkipped(skipped []checker.EntryError) {
	if len(skipped) == 0 {
		return
	}

	counts := map[checker.ErrorKind]int{}
	for _, entryErr := range skipped {
		counts[entryErr.Kind]++
	}
	fmt.Println(color.YellowString("⚠️  Skipped %d addresses (network: %d, parse: %d, missing-field: %d)",
		len(skipped), counts[checker.KindNetwork], counts[checker.KindParse], counts[checker.KindMissingField]))
}

func formatSTX(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
