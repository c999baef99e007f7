package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/chatpanel/internal/chat"
	"github.com/diogo/chatpanel/internal/config"
	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/logging"
	"github.com/diogo/chatpanel/internal/models"
	"github.com/diogo/chatpanel/internal/render"
)

type askFlags struct {
	file string
	copy bool
	raw  bool
}

func newAskCmd(deps *Dependencies, global *globalFlags) *cobra.Command {
	flags := &askFlags{}

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Send one message and print the reply",
		Long: `Send a single message through the same path as the chat panel and print
the reply. The prompt comes from the argument, from --file, or from stdin.

The reply is rendered as markdown when stdout is a terminal and printed
as plain text otherwise. The command exits non-zero when only a fallback
reply could be produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readPrompt(cmd.InOrStdin(), args, flags.file)
			if err != nil {
				return err
			}
			return runAsk(cmd, deps, global, flags, prompt)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Read prompt from file")
	cmd.Flags().BoolVarP(&flags.copy, "copy", "c", false, "Copy the reply to the clipboard")
	cmd.Flags().BoolVarP(&flags.raw, "raw", "r", false, "Print the reply without markdown rendering")

	return cmd
}

// readPrompt picks the prompt source: --file, then the argument, then
// piped stdin.
func readPrompt(stdin io.Reader, args []string, file string) (string, error) {
	var prompt string

	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		prompt = string(data)

	case len(args) > 0:
		prompt = args[0]

	case stdinPiped(stdin):
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt = string(data)
	}

	if strings.TrimSpace(prompt) == "" {
		return "", apierrors.ErrEmptyPrompt
	}
	return prompt, nil
}

// stdinPiped reports whether r carries input rather than an interactive
// terminal.
func stdinPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// terminalWidth returns the width of w when it is a terminal
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

func runAsk(cmd *cobra.Command, deps *Dependencies, global *globalFlags, flags *askFlags, prompt string) error {
	cfg, err := loadConfig(deps, global)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	logger := logging.NewConsole(stderr, cfg.LogLevel)

	if !models.IsKnownModel(cfg.Model) {
		logger.Warn().Str("model", cfg.Model).Msg("unrecognised model name, sending anyway")
	}

	gen, err := generatorFor(deps, cfg)
	if err != nil {
		return err
	}

	panel := chat.New(gen, chat.WithLogger(logger))
	panel.SetInput(prompt)
	panel.Send()

	var spin *spinner
	if _, tty := terminalWidth(stderr); tty {
		spin = newSpinner(stderr, "Asking "+cfg.Model)
		spin.start()
	}
	panel.Fetcher().Wait()
	if spin != nil {
		spin.halt()
	}

	reply, ok := panel.Store().Last(models.SenderBot)
	if !ok {
		return fmt.Errorf("no reply recorded")
	}

	if err := printReply(stdout, reply.Text, cfg, flags.raw); err != nil {
		return err
	}

	if flags.copy || cfg.CopyToClipboard {
		if err := deps.CopyText(reply.Text); err != nil {
			logger.Warn().Err(err).Msg("failed to copy reply to clipboard")
		}
	}

	if isFallback(reply.Text) {
		return fmt.Errorf("no usable reply from %s", cfg.Model)
	}
	return nil
}

// printReply writes text to w, rendered as markdown on a terminal
func printReply(w io.Writer, text string, cfg config.Config, raw bool) error {
	width, tty := terminalWidth(w)
	if raw || !tty {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	out, err := render.Markdown(text, render.FromConfig(cfg).WithWidth(min(width, 100)))
	if err != nil {
		out = text + "\n"
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func isFallback(text string) bool {
	return text == models.FallbackNoReply || text == models.FallbackFetchError
}
