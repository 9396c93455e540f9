package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkasab/unveil/internal/app"
	"github.com/dkasab/unveil/internal/convo"
	"github.com/dkasab/unveil/internal/llm"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the session manager, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	conversationID, _ := cmd.Flags().GetString("conversation")
	allowSkip, _ := cmd.Flags().GetBool("allow-skip")
	transcript, _ := cmd.Flags().GetString("transcript")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	var oracle quiz.Oracle
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in self-check questions.")
		oracle = quiz.UnavailableOracle{}
	} else {
		oracle = quiz.NewLLMOracle(provider, quiz.DefaultConfig())
	}

	mgr, err := convo.LoadOrNew(ctx, convo.Options{
		ConversationID: conversationID,
		SkipAllowed:    allowSkip,
		Quizzes:        quiz.NewService(oracle),
		Persister:      &convo.StorePersister{Repo: st.SnapshotRepo()},
		Events:         eventRepo,
	})
	if err != nil {
		var rerr *convo.RestoreError
		if errors.As(err, &rerr) {
			fmt.Fprintln(os.Stderr, "Saved state could not be restored, starting fresh:", rerr)
		} else {
			return fmt.Errorf("load conversation: %w", err)
		}
	}
	defer mgr.Close(context.Background())

	if transcript != "" {
		if err := ingestFile(mgr, transcript); err != nil {
			return fmt.Errorf("ingest transcript: %w", err)
		}
	}

	return app.Run(mgr)
}

// ingestFile feeds a saved assistant message through the streaming path,
// ending with a final pass so truncation detection runs.
func ingestFile(mgr *convo.Manager, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(data)

	const chunk = 512
	for i := chunk; i < len(text); i += chunk {
		if err := mgr.IngestAssistantText(text[:i], false); err != nil {
			return err
		}
	}
	return mgr.IngestAssistantText(text, true)
}
