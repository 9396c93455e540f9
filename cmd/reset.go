package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <conversation>",
	Short: "Delete a conversation's saved unlock state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.SnapshotRepo().Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		if n == 0 {
			fmt.Printf("No saved state for conversation %q.\n", args[0])
			return nil
		}
		fmt.Printf("Deleted %d snapshot(s) for conversation %q.\n", n, args[0])
		return nil
	},
}
