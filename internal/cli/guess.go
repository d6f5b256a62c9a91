package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <code> <accused>",
		Short: "Accuse a participant of being the AI (seeker only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			accused := args[1]

			req := map[string]string{"accused": accused}
			var result Room

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/guess", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
