package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/config"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/logging"
	"github.com/jask/clinicflow/internal/panels"
	"github.com/jask/clinicflow/internal/screens"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	commands := core.NewCommandRegistry(core.DefaultCommands())

	initials := cfg.UI.ClinicianInitials
	if initials == "" {
		initials = clinic.Initials(cfg.UI.Clinician)
	}
	chrome := core.Chrome{
		Clinician:    cfg.UI.Clinician,
		Initials:     initials,
		SidebarWidth: cfg.UI.SidebarWidth,
	}

	m := core.NewModel(panels.Factories(), keys, commands, chrome, logger)
	m.OpenCommandModal = screens.OpenCommandScreen
	m.OpenJumpPickerModal = screens.OpenJumpPickerScreen

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logger.Info().Str("panel", string(m.CurrentPanel())).Msg("starting")
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info().Msg("exited")
	return nil
}
