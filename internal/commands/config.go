package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/chatpanel/internal/config"
	"github.com/diogo/chatpanel/internal/render"
)

var (
	configLabelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	configDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

func newConfigCmd(deps *Dependencies, global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration chatpanel would run with: defaults, then
~/.chatpanel/config.json, then .env and the environment, then flags.
The API key is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(deps, global)
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the effective configuration (without the API key) to
~/.chatpanel/config.json. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			cfg, err := loadConfig(deps, global)
			if err != nil {
				return err
			}
			return initConfig(cmd.OutOrStdout(), cfg, force)
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List panel themes and markdown styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printThemes(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(initCmd, themesCmd)
	return cmd
}

func printConfig(w io.Writer, cfg config.Config) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return err
	}

	timeout := "none"
	if d := cfg.Timeout(); d > 0 {
		timeout = d.String()
	}

	rows := [][2]string{
		{"API key", cfg.RedactedKey()},
		{"Model", cfg.Model},
		{"Endpoint", cfg.Endpoint},
		{"Timeout", timeout},
		{"Theme", cfg.TUITheme},
		{"Markdown", cfg.Markdown.Style},
		{"Clipboard", fmt.Sprintf("%t", cfg.CopyToClipboard)},
		{"Log level", cfg.LogLevel},
		{"Log file", logPath},
		{"Config", configPath + fileState(configPath)},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintln(w, configLabelStyle.Render(r[0])+r[1]); err != nil {
			return err
		}
	}
	return nil
}

func fileState(path string) string {
	if _, err := os.Stat(path); err != nil {
		return configDimStyle.Render(" (not created)")
	}
	return ""
}

func initConfig(w io.Writer, cfg config.Config, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Wrote %s\n", path)
	return err
}

func printThemes(w io.Writer) error {
	fmt.Fprintln(w, configLabelStyle.Render("Themes"))
	for _, t := range render.Themes() {
		swatch := lipgloss.NewStyle().Background(t.Primary).Render("  ")
		fmt.Fprintf(w, "  %s %-12s %s\n", swatch, t.Name, configDimStyle.Render(t.Description))
	}
	fmt.Fprintln(w, configLabelStyle.Render("Markdown"))
	_, err := fmt.Fprintln(w, "  "+strings.Join(render.StyleNames(), ", "))
	return err
}
