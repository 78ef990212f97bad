package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/backend/internal/chat"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/pkg/gateway"
	"github.com/spf13/cobra"
)

var chatText string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Send and receive chat messages",
}

var chatSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a chat message through the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := gateway.NewClient(resolveGatewayURL())

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		if err := client.SendChat(ctx, chatText); err != nil {
			return err
		}
		cmd.Println("Message sent")
		return nil
	},
}

var chatListenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print support replies as they arrive (Ctrl-C to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		natsURL := resolveNATSURL()
		if natsURL == "" {
			return fmt.Errorf("chat listen needs a NATS server: set --nats-url or nats_url in the config")
		}

		relay, err := chat.Connect(natsURL)
		if err != nil {
			return err
		}
		defer relay.Close()

		sub, err := relay.SubscribeReplies(func(msg model.ChatMessage) {
			cmd.Printf("[%s] %s: %s\n", msg.SentAt.Format("15:04:05"), msg.Sender, msg.Text)
		})
		if err != nil {
			return err
		}
		defer func() { _ = sub.Unsubscribe() }()

		cmd.Println("Listening for replies...")
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		return nil
	},
}

func init() {
	chatSendCmd.Flags().StringVar(&chatText, "text", "", "message text")
	_ = chatSendCmd.MarkFlagRequired("text")

	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatListenCmd)
}
