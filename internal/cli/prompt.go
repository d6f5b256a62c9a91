package cli

import (
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "AI system prompt commands",
	}

	cmd.AddCommand(newPromptGetCmd())
	cmd.AddCommand(newPromptSetCmd())

	return cmd
}

func newPromptGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the AI system prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Prompt

			if err := client.Get("/api/v1/prompt", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPromptSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <prompt>",
		Short: "Replace the AI system prompt (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"prompt": args[0]}

			if err := client.Put("/api/v1/prompt", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Prompt updated")
			return nil
		},
	}
}
