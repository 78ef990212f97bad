package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/folio/backend/internal/geo"
	"github.com/folio/backend/pkg/form"
	"github.com/folio/backend/pkg/gateway"
	"github.com/spf13/cobra"
)

var (
	submitName      string
	submitEmail     string
	submitPhone     string
	submitSubject   string
	submitMessage   string
	submitPrefer    string
	submitHearAbout string
	submitSubscribe bool
	submitSaveInfo  bool
	submitAttach    []string
	submitLat       float64
	submitLon       float64
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the contact form",
	Long: `Submit the contact form to the backend. Fields left unset fall back
to the stored draft and saved contact info. When the backend is
unreachable the submission is not attempted and the draft is kept.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitName, "name", "", "your name")
	submitCmd.Flags().StringVar(&submitEmail, "email", "", "your email address")
	submitCmd.Flags().StringVar(&submitPhone, "phone", "", "your phone number")
	submitCmd.Flags().StringVar(&submitSubject, "subject", "", "message subject")
	submitCmd.Flags().StringVar(&submitMessage, "message", "", "message body")
	submitCmd.Flags().StringVar(&submitPrefer, "prefer", "", "preferred contact method (email|phone|whatsapp)")
	submitCmd.Flags().StringVar(&submitHearAbout, "hear-about", "", "how you heard about the site")
	submitCmd.Flags().BoolVar(&submitSubscribe, "subscribe", false, "subscribe to updates")
	submitCmd.Flags().BoolVar(&submitSaveInfo, "save-info", false, "remember name, email and phone for next time")
	submitCmd.Flags().StringArrayVar(&submitAttach, "attach", nil, "file to attach (repeatable, files over 5MB are skipped)")
	submitCmd.Flags().Float64Var(&submitLat, "lat", 0, "latitude for the location tag")
	submitCmd.Flags().Float64Var(&submitLon, "lon", 0, "longitude for the location tag")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	stateDir, err := resolveStateDir()
	if err != nil {
		return err
	}
	store, err := form.NewFileStore(stateDir)
	if err != nil {
		return err
	}

	client := gateway.NewClient(resolveGatewayURL())
	ctrl := form.NewController(store, client, form.Config{Online: client.Online})
	if err := ctrl.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	// Resolve the location tag before filling fields. Coordinates win
	// when both are given; otherwise the IP tier decides, and total
	// failure degrades to "Unknown location" rather than an error.
	var coords *geo.Coords
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		coords = &geo.Coords{Lat: submitLat, Lon: submitLon}
	}
	location := geo.NewResolver().Resolve(ctx, coords)

	// Only flags the user actually set override the restored draft.
	ctrl.Update(func(f *form.Fields) {
		set := cmd.Flags().Changed
		if set("name") {
			f.Name = submitName
		}
		if set("email") {
			f.Email = submitEmail
		}
		if set("phone") {
			f.Phone = submitPhone
		}
		if set("subject") {
			f.Subject = submitSubject
		}
		if set("message") {
			f.Message = submitMessage
		}
		if set("prefer") {
			f.PreferredContact = submitPrefer
		}
		if set("hear-about") {
			f.HearAbout = submitHearAbout
		}
		if set("subscribe") {
			f.Subscribe = submitSubscribe
		}
		if set("save-info") {
			f.SaveInfo = submitSaveInfo
		}
		f.Location = location
	})
	for _, path := range submitAttach {
		ctrl.AddAttachment(path)
	}

	err = ctrl.Submit(ctx)
	switch {
	case errors.Is(err, form.ErrOffline):
		// The debounced draft write may not have fired before exit, so
		// persist the snapshot now.
		if serr := store.Set(form.DraftKey, ctrl.Fields()); serr != nil {
			return serr
		}
		return fmt.Errorf("backend unreachable, submission not attempted; draft saved")
	case errors.Is(err, form.ErrInvalid):
		for field, msg := range ctrl.Validate() {
			cmd.PrintErrf("  %s: %s\n", field, msg)
		}
		if serr := store.Set(form.DraftKey, ctrl.Fields()); serr != nil {
			return serr
		}
		return fmt.Errorf("validation failed; draft saved")
	case err != nil:
		if serr := store.Set(form.DraftKey, ctrl.Fields()); serr != nil {
			return serr
		}
		return fmt.Errorf("submit failed: %w (draft saved)", err)
	}

	cmd.Println("Contact form submitted successfully")
	if submitSaveInfo {
		cmd.Println("Contact info saved for next time")
	}
	return nil
}
