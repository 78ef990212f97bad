package main

import (
	"context"
	"time"

	"github.com/folio/backend/pkg/gateway"
	"github.com/spf13/cobra"
)

var (
	meetingDate  string
	meetingTime  string
	meetingType  string
	meetingEmail string
	meetingName  string
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Schedule a meeting",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := gateway.NewClient(resolveGatewayURL())

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		scheduled, err := client.ScheduleMeeting(ctx, gateway.Meeting{
			Date:  meetingDate,
			Time:  meetingTime,
			Type:  meetingType,
			Email: meetingEmail,
			Name:  meetingName,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Meeting scheduled (%s)\n", scheduled.Status)
		cmd.Printf("Join link: %s\n", scheduled.MeetingLink)
		return nil
	},
}

func init() {
	meetingCmd.Flags().StringVar(&meetingDate, "date", "", "meeting date, e.g. 2026-09-15")
	meetingCmd.Flags().StringVar(&meetingTime, "time", "", "meeting time, e.g. 14:30")
	meetingCmd.Flags().StringVar(&meetingType, "type", "video", "meeting type (video|phone|in-person)")
	meetingCmd.Flags().StringVar(&meetingEmail, "email", "", "your email address")
	meetingCmd.Flags().StringVar(&meetingName, "name", "", "your name")

	_ = meetingCmd.MarkFlagRequired("date")
	_ = meetingCmd.MarkFlagRequired("time")
	_ = meetingCmd.MarkFlagRequired("email")
	_ = meetingCmd.MarkFlagRequired("name")
}
