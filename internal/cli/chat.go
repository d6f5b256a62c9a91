package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat commands",
	}

	cmd.AddCommand(newChatSendCmd())
	cmd.AddCommand(newChatLogCmd())
	cmd.AddCommand(newChatTurnCmd())

	return cmd
}

func newChatSendCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "send <code> <message>",
		Short: "Send a chat message (use --to chatgpt to message the AI)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			text := args[1]

			if to == "" {
				return fmt.Errorf("--to is required")
			}

			req := map[string]string{"to": to, "message": text}
			var result Message

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/messages", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient identity (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newChatLogCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:   "log <code>",
		Short: "Show a conversation and whose turn it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if with == "" {
				return fmt.Errorf("--with is required")
			}

			var result MessageList

			path := fmt.Sprintf("/api/v1/rooms/%s/messages?with=%s", code, url.QueryEscape(with))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "Conversation partner identity (required)")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}

func newChatTurnCmd() *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:   "turn <code>",
		Short: "Show turn state for a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if with == "" {
				return fmt.Errorf("--with is required")
			}

			var result TurnInfo

			path := fmt.Sprintf("/api/v1/rooms/%s/turn?with=%s", code, url.QueryEscape(with))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "Conversation partner identity (required)")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}
