// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"sensorq/cli/internal/backend"
	"sensorq/cli/internal/config"
	"sensorq/cli/internal/httperrors"
	"sensorq/cli/internal/logging"
	"sensorq/cli/internal/query"
	"sensorq/cli/internal/results"
	"sensorq/cli/internal/terminal"

	"atomicgo.dev/cursor"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// askCmd represents the ask command for submitting a single question to the
// backend. It sends the question, waits with an inline spinner, and prints the
// answer: a summary, a table when the backend returns rows, and a bar chart
// when the backend returns chart data.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the backend a single question and print the answer",
	Long: `The ask command submits one question to the analysis backend and prints the
answer. The question can be given as arguments:

  sensorq ask which room was warmest last week

When no question is given, you are prompted for one. Use --format to print the
result table as json, csv or md instead of a rendered table.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			promptText := "Your question: "
			fmt.Print(promptText)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			question = strings.TrimSpace(line)
			terminal.ClearPreviousLines(len(promptText) + len(line))
		}
		if question == "" {
			pterm.Println("⚠️  Nothing to ask.")
			return nil
		}

		api := backend.New(cfg.BackendOrigin, time.Duration(cfg.TimeoutSeconds)*time.Second)

		ctrl := query.NewController()
		ctrl.SetQuery(question)

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "Asking the backend...", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		admitted, cause := ctrl.Submit(cmd.Context(), api)
		stopSpinner()
		cursor.Show()

		if !admitted {
			// Cannot happen with a non-blank question and a fresh controller.
			return nil
		}

		if ctrl.State() == query.Failed {
			pterm.Println()
			pterm.Error.Println(query.FailureMessage)
			if cfg.Verbose && cause != nil {
				_ = httperrors.Explain(cause, cfg.BackendOrigin)
				fmt.Println(logging.PresentError("ask", cause))
			}
			return nil
		}

		printAnswer(ctrl.Answer(), cfg.Format)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("format", "f", "", "Table output format: table, json, csv or md")
	rootCmd.AddCommand(askCmd)
}

// printAnswer renders a backend answer to stdout: the summary in a box, then
// the result table in the configured format, then a bar chart when present.
func printAnswer(ans *backend.Answer, format string) {
	if ans == nil {
		return
	}

	if strings.TrimSpace(ans.Summary) != "" {
		pterm.Println()
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Answer")).
			WithPadding(1).
			Println(ans.Summary)
	}

	if len(ans.Table) > 0 || format == "json" {
		pterm.Println()
		if err := results.Render(os.Stdout, ans, format); err != nil {
			pterm.Error.Println(err)
			return
		}
	}

	if len(ans.Chart) > 0 {
		bars := make([]pterm.Bar, 0, len(ans.Chart))
		for _, p := range ans.Chart {
			bars = append(bars, pterm.Bar{Label: p.Label, Value: int(math.Round(p.Value))})
		}
		pterm.Println()
		_ = pterm.DefaultBarChart.
			WithHorizontal().
			WithShowValue().
			WithBars(bars).
			Render()
	}
	pterm.Println()
}
