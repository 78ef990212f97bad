package main

import (
	"encoding/json"

	"github.com/folio/backend/pkg/form"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect or clear the stored form draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored draft and saved contact info",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		var draft form.Fields
		if ok, err := store.Get(form.DraftKey, &draft); err != nil {
			return err
		} else if !ok {
			cmd.Println("No draft stored")
		} else {
			out, _ := json.MarshalIndent(draft, "", "  ")
			cmd.Println("Draft:")
			cmd.Println(string(out))
		}

		var info form.SavedInfo
		if ok, err := store.Get(form.SavedInfoKey, &info); err != nil {
			return err
		} else if !ok {
			cmd.Println("No saved contact info")
		} else {
			out, _ := json.MarshalIndent(info, "", "  ")
			cmd.Println("Saved contact info:")
			cmd.Println(string(out))
		}
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Delete(form.DraftKey); err != nil {
			return err
		}
		cmd.Println("Draft cleared")
		return nil
	},
}

func openStore() (*form.FileStore, error) {
	stateDir, err := resolveStateDir()
	if err != nil {
		return nil, err
	}
	return form.NewFileStore(stateDir)
}

func init() {
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
}
