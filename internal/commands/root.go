// Package commands provides CLI commands for chatpanel.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/chatpanel/internal/api"
	"github.com/diogo/chatpanel/internal/chat"
	"github.com/diogo/chatpanel/internal/config"
	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/logging"
	"github.com/diogo/chatpanel/internal/render"
	"github.com/diogo/chatpanel/internal/tui"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	model string
	theme string
}

// NewRootCmd builds the command tree around deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "chatpanel",
		Short: "Terminal chat panel for the Gemini API",
		Long: `chatpanel opens a small chat panel in your terminal. Every message is sent
to the Gemini generateContent API with a short preamble asking for brief,
beginner friendly bullet points, and the reply is added to the conversation.

The API key is read from GEMINI_API_KEY (or a .env file in the current
directory).

Examples:
  chatpanel                         Open the chat panel
  chatpanel ask "Why is the sky blue?"
  echo "What is rain?" | chatpanel ask
  chatpanel config                  Show the effective configuration`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "chatpanel %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runChat(deps, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.model, "model", "m", "", "Model to use (e.g., gemini-2.0-flash)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "",
		"Panel theme ("+strings.Join(render.ThemeNames(), ", ")+")")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(newAskCmd(deps, flags))
	cmd.AddCommand(newConfigCmd(deps, flags))

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd(NewDependencies()).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the effective config with command-line overrides
func loadConfig(deps *Dependencies, flags *globalFlags) (config.Config, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return cfg, err
	}

	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.theme != "" {
		if _, ok := render.ThemeByName(flags.theme); !ok {
			return cfg, fmt.Errorf("unknown theme %q (available: %s)",
				flags.theme, strings.Join(render.ThemeNames(), ", "))
		}
		cfg.TUITheme = flags.theme
	}

	return cfg, nil
}

// generatorFor builds the API client, turning a missing key into a hint
func generatorFor(deps *Dependencies, cfg config.Config) (api.Generator, error) {
	gen, err := deps.NewGenerator(cfg)
	if err != nil {
		if errors.Is(err, apierrors.ErrNoAPIKey) {
			return nil, fmt.Errorf("%w: export it or add it to a .env file", err)
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return gen, nil
}

// runChat opens the chat panel TUI
func runChat(deps *Dependencies, flags *globalFlags) error {
	cfg, err := loadConfig(deps, flags)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if path, err := config.GetLogPath(cfg); err == nil {
		fileLogger, closer, err := logging.NewFile(path, cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		} else {
			defer closer.Close()
			logger = fileLogger
		}
	}

	gen, err := generatorFor(deps, cfg)
	if err != nil {
		return err
	}

	panel := chat.New(gen, chat.WithLogger(logger))
	theme := render.ThemeOrDefault(cfg.TUITheme)

	logger.Info().
		Str("model", cfg.Model).
		Str("theme", theme.Name).
		Dur("timeout", cfg.Timeout()).
		Msg("chat panel started")

	err = deps.RunTUI(panel, tui.Options{
		Theme:    theme,
		Markdown: render.FromConfig(cfg),
		Logger:   logger,
	})

	logger.Info().
		Int("messages", panel.Store().Len()).
		Int("abandoned", panel.Pending()).
		Msg("chat panel closed")

	return err
}
