// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"time"

	"sensorq/cli/internal/backend"
	"sensorq/cli/internal/config"
	"sensorq/cli/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command for the interactive question screen.
// It opens a full-screen terminal UI where questions are typed into an input
// box and answers render in place below it.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive question screen",
	Long: `The chat command opens a full-screen terminal UI. Type a question and press
Enter to submit it; a spinner shows while the backend is working, and the
answer replaces it when it arrives. Submitting again clears the previous
answer first. Press Esc or Ctrl+C to leave.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		api := backend.New(cfg.BackendOrigin, time.Duration(cfg.TimeoutSeconds)*time.Second)

		p := tea.NewProgram(tui.New(api), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
