package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pymage/pymage-backend/internal/domain"
)

var (
	lookupLang    string
	lookupVariant string
	lookupRaw     bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a word",
	Long: `Look up a word and print its definitions, examples, etymology,
pronunciation, and related words.

Examples:
  pymagectl lookup serendipity
  pymagectl lookup bank --variant "Etymology 2"
  pymagectl lookup Haus --lang German`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("word", args[0])
		if lookupLang != "" {
			q.Set("lang", lookupLang)
		}
		if lookupVariant != "" {
			q.Set("variant", lookupVariant)
		}

		var record domain.WordRecord
		if err := apiGet("/api/lookup?"+q.Encode(), &record); err != nil {
			return err
		}

		if lookupRaw {
			return printJSON(record)
		}
		printRecord(record)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "List completion suggestions for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Suggestions []string `json:"suggestions"`
		}
		if err := apiGet("/api/suggest?q="+url.QueryEscape(args[0]), &resp); err != nil {
			return err
		}
		for _, s := range resp.Suggestions {
			fmt.Println(s)
		}
		return nil
	},
}

func printRecord(rec domain.WordRecord) {
	fmt.Printf("%s\n%s\n", rec.Word, strings.Repeat("=", len(rec.Word)))

	if rec.IsError() {
		fmt.Printf("error (%s): %s\n", rec.ErrorKind, rec.Error)
		return
	}

	if rec.NeedsVariantSelection {
		fmt.Println("multiple entries found, pick one with --variant:")
		for _, v := range rec.Variants {
			fmt.Printf("  %s\n", v)
		}
		return
	}

	if rec.Pronunciation != "" {
		fmt.Printf("pronunciation: %s\n", rec.Pronunciation)
	}

	for pos, defs := range rec.DefinitionsByPOS {
		fmt.Printf("\n%s:\n", pos)
		for i, d := range defs {
			fmt.Printf("  %d. %s\n", i+1, d)
		}
	}

	if len(rec.Examples) > 0 {
		fmt.Println("\nexamples:")
		for _, ex := range rec.Examples {
			fmt.Printf("  - %s\n", ex)
		}
	}

	if rec.Etymology != "" {
		fmt.Printf("\netymology:\n  %s\n", rec.Etymology)
	}

	if len(rec.RelatedWords.Synonyms) > 0 {
		fmt.Printf("\nsynonyms: %s\n", strings.Join(rec.RelatedWords.Synonyms, ", "))
	}
	if len(rec.RelatedWords.Antonyms) > 0 {
		fmt.Printf("antonyms: %s\n", strings.Join(rec.RelatedWords.Antonyms, ", "))
	}

	if len(rec.Translations) > 0 {
		fmt.Printf("\ntranslations: %s\n", strings.Join(rec.Translations, ", "))
	}
}

func init() {
	lookupCmd.Flags().StringVar(&lookupLang, "lang", "", "source language section to read (default English)")
	lookupCmd.Flags().StringVar(&lookupVariant, "variant", "", "etymology variant to resolve an ambiguous entry")
	lookupCmd.Flags().BoolVar(&lookupRaw, "json", false, "print the raw JSON record")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(suggestCmd)
}
