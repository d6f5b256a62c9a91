package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuestionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Question mini-game commands",
	}

	cmd.AddCommand(newQuestionSubmitCmd())
	cmd.AddCommand(newQuestionLeaderboardCmd())

	return cmd
}

func newQuestionSubmitCmd() *cobra.Command {
	var email, username, fingerprint string

	cmd := &cobra.Command{
		Use:   "submit <question>",
		Short: "Submit a question to be judged by the AI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || username == "" || fingerprint == "" {
				return fmt.Errorf("--email, --username, and --fingerprint are required")
			}

			req := map[string]string{
				"email":       email,
				"username":    username,
				"fingerprint": fingerprint,
				"input":       args[0],
			}
			var result QuestionScore

			if err := client.Post("/api/v1/question", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&username, "username", "", "Display name for the leaderboard (required)")
	cmd.Flags().StringVar(&fingerprint, "fingerprint", "", "Device fingerprint (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("fingerprint")

	return cmd
}

func newQuestionLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the question mini-game leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/question/leaderboard"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result Leaderboard

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show (default: server default)")

	return cmd
}
