package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryan-cox/ganttscale/internal/clipboard"
	"github.com/bryan-cox/ganttscale/internal/config"
	"github.com/bryan-cox/ganttscale/internal/model"
	"github.com/bryan-cox/ganttscale/internal/project"
	"github.com/bryan-cox/ganttscale/internal/report"
	"github.com/bryan-cox/ganttscale/internal/timeline"
)

// --- Cobra Command Definitions ---

var (
	// Used for flags.
	filePath     string
	configPath   string
	modeName     string
	pixelsPerDay int
	zoomIn       int
	zoomOut      int
	format       string
	timezone     string
	copyOutput   bool
	debug        bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:              "ganttscale",
		Short:            "Compute Gantt timeline geometry from a YAML project file.",
		Long:             `ganttscale reads a project's date range and tasks and prints the pixel layout of task bars, header bands and grid lines for a day, week, month or year view.`,
		PersistentPreRun: setupLogging,
	}

	// layoutCmd prints everything at once
	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the complete timeline layout.",
		Long:  `Prints the scale, total extent, both header tiers, grid lines and the geometry of every task bar.`,
		Run:   runLayoutCommand,
	}

	// headersCmd represents the headers command
	headersCmd = &cobra.Command{
		Use:   "headers",
		Short: "Print the primary and secondary header bands.",
		Run:   runHeadersCommand,
	}

	// barsCmd represents the bars command
	barsCmd = &cobra.Command{
		Use:   "bars",
		Short: "Print task bar positions.",
		Long:  `Prints each task's left offset and width, grouped by whether the bar is inside, crossing or outside the visible range.`,
		Run:   runBarsCommand,
	}

	// gridCmd represents the grid command
	gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Print vertical grid line positions.",
		Run:   runGridCommand,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "project.yml", "Path to the YAML project file.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (default ganttscale.toml if present).")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "", "View mode: day, week, month or year.")
	rootCmd.PersistentFlags().IntVar(&pixelsPerDay, "pixels-per-day", 0, "Initial horizontal scale.")
	rootCmd.PersistentFlags().IntVar(&zoomIn, "zoom-in", 0, "Number of zoom-in steps to apply.")
	rootCmd.PersistentFlags().IntVar(&zoomOut, "zoom-out", 0, "Number of zoom-out steps to apply.")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Output format: text, yaml or json.")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "Timezone used to read project dates.")
	rootCmd.PersistentFlags().BoolVar(&copyOutput, "copy", false, "Also copy the output to the clipboard.")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging.")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(headersCmd)
	rootCmd.AddCommand(barsCmd)
	rootCmd.AddCommand(gridCmd)
}

// --- Main Application Entry Point ---

func main() {
	// Setup structured JSON logger for errors.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	Execute()
}

func setupLogging(cmd *cobra.Command, args []string) {
	if debug {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}
}

// --- Command Execution Logic ---

func runLayoutCommand(cmd *cobra.Command, args []string) {
	layout, cfg := loadLayout()
	emit(cmd, cfg.Format, layout, func(out io.Writer) {
		report.PrintLayout(out, layout)
	})
}

func runHeadersCommand(cmd *cobra.Command, args []string) {
	layout, cfg := loadLayout()
	emit(cmd, cfg.Format, layout.Headers, func(out io.Writer) {
		report.PrintSummary(out, layout)
		report.PrintHeaders(out, layout.Headers)
	})
}

func runBarsCommand(cmd *cobra.Command, args []string) {
	layout, cfg := loadLayout()
	emit(cmd, cfg.Format, layout.Bars, func(out io.Writer) {
		report.PrintBars(out, report.CategorizeBars(layout))
	})
}

func runGridCommand(cmd *cobra.Command, args []string) {
	layout, cfg := loadLayout()
	emit(cmd, cfg.Format, layout.GridLines, func(out io.Writer) {
		report.PrintGridLines(out, layout.GridLines)
	})
}

// --- Helper Functions ---

// resolveConfig merges the config file with any flags that were given.
func resolveConfig() (config.Config, error) {
	path, explicit := configPath, configPath != ""
	if !explicit {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	if modeName != "" {
		cfg.Mode = modeName
	}
	if pixelsPerDay != 0 {
		cfg.PixelsPerDay = pixelsPerDay
	}
	if format != "" {
		cfg.Format = format
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func loadLayout() (model.Layout, config.Config) {
	cfg, err := resolveConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err, "path", configPath)
		os.Exit(1)
	}

	loc, _ := cfg.Location()
	proj, rng, err := project.Load(filePath, loc)
	if err != nil {
		slog.Error("failed to load project file", "error", err, "path", filePath)
		os.Exit(1)
	}

	// Validate has already accepted the mode.
	mode, _ := model.ParseMode(cfg.Mode)

	engine := timeline.New(rng, timeline.Scale{PixelsPerDay: cfg.PixelsPerDay, Mode: timeline.DefaultMode})
	engine.OnChange(func(s timeline.Scale) {
		slog.Debug("scale changed", "pixels_per_day", s.PixelsPerDay, "mode", s.Mode)
	})
	engine.SetMode(mode)
	for i := 0; i < zoomIn; i++ {
		engine.ZoomIn()
	}
	for i := 0; i < zoomOut; i++ {
		engine.ZoomOut()
	}

	return engine.Layout(proj.Tasks), cfg
}

// emit writes text output via printText, or encodes v for structured formats.
func emit(cmd *cobra.Command, outFormat string, v any, printText func(io.Writer)) {
	var buf bytes.Buffer
	if outFormat == config.FormatText {
		printText(&buf)
	} else if err := report.Encode(&buf, outFormat, v); err != nil {
		slog.Error("failed to encode output", "error", err, "format", outFormat)
		os.Exit(1)
	}

	fmt.Fprint(cmd.OutOrStdout(), buf.String())

	if copyOutput {
		if err := clipboard.CopyText(buf.String()); err != nil {
			slog.Warn("failed to copy output to clipboard", "error", err)
		}
	}
}
