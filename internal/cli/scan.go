package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"netexposure/internal/banner"
	"netexposure/internal/model"
	"netexposure/internal/output"
	"netexposure/internal/ports"
	"netexposure/internal/scan"
	"netexposure/internal/target"
)

var (
	scanPorts       string
	scanTimeout     float64
	scanConcurrency int
	scanJSON        string
	scanHTML        string
	scanSilent      bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <target-cidr>",
	Short: "Scan a CIDR range for exposed services and generate a report",
	Long: `Scan expands the target range into individual hosts, probes every
(host, port) combination under a bounded concurrency gate, and reports the
services that accepted a connection, together with any captured banner and
a canned risk note for well-known ports.

Example:
  netexposure scan 192.168.1.0/24 --ports 22,80,443,1000-1010 --html report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanPorts, "ports", "p", "", "comma-separated ports and ranges (e.g. 22,80,443,1000-1010); defaults to a curated list of risky services")
	scanCmd.Flags().Float64VarP(&scanTimeout, "timeout", "t", 1.0, "socket timeout in seconds")
	scanCmd.Flags().IntVarP(&scanConcurrency, "concurrency", "c", 200, "maximum simultaneous connection attempts")
	scanCmd.Flags().StringVar(&scanJSON, "json", "", "optional path to write the JSON report")
	scanCmd.Flags().StringVar(&scanHTML, "html", "", "optional path to write the HTML report")
	scanCmd.Flags().BoolVar(&scanSilent, "silent", false, "suppress banner art and the progress bar")
}

func runScan(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)

	if !scanSilent {
		banner.PrintBanner()
	}

	portSet, err := ports.Parse(scanPorts)
	if err != nil {
		return err
	}
	if len(portSet) == 0 {
		return errors.New("no valid ports supplied")
	}

	targetCIDR := args[0]
	hosts, err := target.Expand(targetCIDR)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if IsVerbose() {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	cfg := scan.Config{
		Target:      targetCIDR,
		Hosts:       hosts,
		Ports:       portSet,
		Timeout:     time.Duration(scanTimeout * float64(time.Second)),
		Concurrency: scanConcurrency,
	}

	var bar *progressbar.ProgressBar
	if !scanSilent {
		bar = progressbar.NewOptions(len(hosts)*len(portSet),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription("[cyan][scanning][reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		cfg.Progress = func(done, total int) { _ = bar.Add(1) }
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	report, err := scan.New(cfg, logger).Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nScan interrupted by user.")
			os.Exit(1)
		}
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	printSummary(report)

	if scanJSON != "" {
		if err := writeReportFile(scanJSON, func(f *os.File) error {
			return output.WriteJSON(f, output.BuildRecord(report))
		}); err != nil {
			return err
		}
		fmt.Printf("JSON saved to %s\n", scanJSON)
	}
	if scanHTML != "" {
		if err := writeReportFile(scanHTML, func(f *os.File) error {
			return output.RenderHTML(f, report)
		}); err != nil {
			return err
		}
		fmt.Printf("HTML saved to %s\n", scanHTML)
	}
	return nil
}

// applyConfigDefaults lets the config file fill in scan flags the user left
// untouched. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) {
	c := GetConfig()
	if c == nil {
		return
	}
	if !cmd.Flags().Changed("timeout") && c.Timeout > 0 {
		scanTimeout = c.Timeout
	}
	if !cmd.Flags().Changed("concurrency") && c.Concurrency > 0 {
		scanConcurrency = c.Concurrency
	}
	if !cmd.Flags().Changed("ports") && c.Ports != "" {
		scanPorts = c.Ports
	}
}

func printSummary(report *model.ScanReport) {
	fmt.Printf("Target: %s\n", report.Target)
	fmt.Printf("Hosts scanned: %d\n", report.HostCount)
	fmt.Printf("Ports: %s\n", output.FormatPorts(report.Ports))

	if len(report.Exposures) == 0 {
		color.Green("\nNo exposed services detected on the selected ports.")
		return
	}
	color.Yellow("\nExposed services detected:")
	_ = output.WriteTable(os.Stdout, report)
}

func writeReportFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
