package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkasab/unveil/internal/convo"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <transcript>",
	Short: "Extract and redact artifacts from a transcript without the TUI",
	Long: `Replay feeds a saved assistant message through the extraction pipeline
and prints each detected artifact with its locked lines redacted.

This is a stateless developer tool — no database, no quizzes, no events.
Useful for checking what the gate would hide for a given snippet.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	mgr := convo.New(convo.Options{ConversationID: "replay"})
	defer mgr.Close(cmd.Context())

	if err := mgr.IngestAssistantText(string(data), true); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	views := mgr.Artifacts()
	if len(views) == 0 {
		fmt.Println("No artifacts found.")
		return nil
	}

	sep := strings.Repeat("─", 60)
	for _, v := range views {
		fmt.Println(sep)
		fmt.Printf("%s (%s)  v%d  %d lines  gates: %d\n",
			v.Artifact.Title, v.Artifact.Language, v.Artifact.Version,
			v.Artifact.LineCount(), v.Progress.TotalGates)
		if v.Artifact.Truncated {
			fmt.Println("warning: artifact looks truncated")
		}
		fmt.Println(sep)

		code, err := mgr.GetVisibleCode(v.Slot)
		if err != nil {
			return err
		}
		fmt.Println(code)
	}
	return nil
}
