package commands

import (
	"github.com/atotto/clipboard"

	"github.com/diogo/chatpanel/internal/api"
	"github.com/diogo/chatpanel/internal/chat"
	"github.com/diogo/chatpanel/internal/config"
	"github.com/diogo/chatpanel/internal/tui"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// LoadConfig returns the effective configuration.
	LoadConfig func() (config.Config, error)

	// NewGenerator builds the API client for cfg.
	NewGenerator func(cfg config.Config) (api.Generator, error)

	// RunTUI runs the chat panel until the user quits.
	RunTUI func(panel *chat.Panel, opts tui.Options) error

	// CopyText writes to the system clipboard.
	CopyText func(text string) error
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		LoadConfig:   config.Load,
		NewGenerator: newGenerator,
		RunTUI:       tui.RunChat,
		CopyText:     clipboard.WriteAll,
	}
}

func newGenerator(cfg config.Config) (api.Generator, error) {
	return api.NewClient(cfg.Key(),
		api.WithModel(cfg.Model),
		api.WithEndpoint(cfg.Endpoint),
		api.WithTimeout(cfg.Timeout()),
	)
}
