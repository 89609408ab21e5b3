package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var speakLang string

var speakCmd = &cobra.Command{
	Use:   "speak <word>",
	Short: "Pronounce a word through the daemon's audio output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{
			"word":            args[0],
			"source_language": speakLang,
		}
		var resp struct {
			Status string `json:"status"`
		}
		if err := apiPost("/api/speak", body, &resp); err != nil {
			return err
		}
		fmt.Printf("spoke %q\n", args[0])
		return nil
	},
}

func init() {
	speakCmd.Flags().StringVar(&speakLang, "lang", "", "source language of the word")
	rootCmd.AddCommand(speakCmd)
}
