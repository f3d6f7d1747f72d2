package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  pagetable config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	})

	return cmd
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Server.Addr = promptValue(reader, out, "Listen address", cfg.Server.Addr)
	cfg.Server.Source = promptValue(reader, out, "Source (memory/sqlite)", cfg.Server.Source)
	cfg.Server.DataPath = promptValue(reader, out, "Users JSON file", cfg.Server.DataPath)
	cfg.Server.DBPath = promptValue(reader, out, "Database path", cfg.Server.DBPath)
	cfg.Server.CORSOrigins = promptSlice(reader, out, "CORS origins (comma-separated, empty for all)", cfg.Server.CORSOrigins)
	cfg.Client.BaseURL = promptValue(reader, out, "API base URL", cfg.Client.BaseURL)
	cfg.Client.PageSize = promptInt(reader, out, "Page size", cfg.Client.PageSize)
	cfg.Client.Timeout = promptValue(reader, out, "Request timeout", cfg.Client.Timeout)
	cfg.Table.Overscan = promptInt(reader, out, "Overscan rows", cfg.Table.Overscan)
	cfg.Table.DebounceMS = promptInt(reader, out, "Scroll debounce (ms)", cfg.Table.DebounceMS)
	cfg.Table.LoadThreshold = promptInt(reader, out, "Load threshold (lines)", cfg.Table.LoadThreshold)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(out, format, args...) }

	p("Current configuration:\n")
	p("──────────────────────\n")
	p("[server]\n")
	p("  addr           = %s\n", cfg.Server.Addr)
	p("  source         = %s\n", cfg.Server.Source)
	p("  data_path      = %s\n", cfg.Server.DataPath)
	p("  db_path        = %s\n", cfg.Server.DBPath)
	if len(cfg.Server.CORSOrigins) > 0 {
		p("  cors_origins   = %s\n", strings.Join(cfg.Server.CORSOrigins, ", "))
	}
	p("\n[client]\n")
	p("  base_url       = %s\n", cfg.Client.BaseURL)
	p("  page_size      = %d\n", cfg.Client.PageSize)
	p("  timeout        = %s\n", cfg.Client.Timeout)
	p("\n[table]\n")
	p("  row_height     = %d\n", cfg.Table.RowHeight)
	p("  overscan       = %d\n", cfg.Table.Overscan)
	p("  debounce_ms    = %d\n", cfg.Table.DebounceMS)
	p("  load_threshold = %d\n", cfg.Table.LoadThreshold)
	p("\n[ui]\n")
	p("  theme          = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
