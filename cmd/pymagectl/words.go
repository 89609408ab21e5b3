package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pymage/pymage-backend/internal/domain"
)

var (
	saveLang   string
	listLimit  int
	listOffset int
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the saved-word list",
}

var wordsSaveCmd = &cobra.Command{
	Use:   "save <word>",
	Short: "Save a word to the vocabulary list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Saved bool   `json:"saved"`
			ID    *int64 `json:"id"`
		}
		body := map[string]string{
			"word":            args[0],
			"source_language": saveLang,
		}
		if err := apiPost("/api/words", body, &resp); err != nil {
			return err
		}
		if !resp.Saved {
			fmt.Printf("%q is already saved\n", args[0])
			return nil
		}
		fmt.Printf("saved %q (id %d)\n", args[0], *resp.ID)
		return nil
	},
}

var wordsExistsCmd = &cobra.Command{
	Use:   "exists <word>",
	Short: "Check whether a word is already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Word   string `json:"word"`
			Exists bool   `json:"exists"`
		}
		if err := apiGet("/api/words/exists?word="+url.QueryEscape(args[0]), &resp); err != nil {
			return err
		}
		if resp.Exists {
			fmt.Printf("%q is saved\n", args[0])
		} else {
			fmt.Printf("%q is not saved\n", args[0])
		}
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved words, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if listLimit > 0 {
			q.Set("limit", strconv.Itoa(listLimit))
		}
		if listOffset > 0 {
			q.Set("offset", strconv.Itoa(listOffset))
		}
		path := "/api/words"
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
		return fetchAndPrintWords(path)
	},
}

var wordsSearchCmd = &cobra.Command{
	Use:   "search <substring>",
	Short: "Search saved words by substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchAndPrintWords("/api/words/search?q=" + url.QueryEscape(args[0]))
	},
}

var wordsFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchAndPrintWords("/api/words/favorites")
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved word by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := apiDelete(fmt.Sprintf("/api/words/%d", id)); err != nil {
			return err
		}
		fmt.Printf("deleted word %d\n", id)
		return nil
	},
}

var wordsFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a saved word's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		var resp struct {
			ID       int64 `json:"id"`
			Favorite bool  `json:"favorite"`
		}
		if err := apiPost(fmt.Sprintf("/api/words/%d/favorite", id), struct{}{}, &resp); err != nil {
			return err
		}
		if resp.Favorite {
			fmt.Printf("word %d marked favorite\n", id)
		} else {
			fmt.Printf("word %d unmarked favorite\n", id)
		}
		return nil
	},
}

func fetchAndPrintWords(path string) error {
	var resp struct {
		Words []domain.StoredWord `json:"words"`
	}
	if err := apiGet(path, &resp); err != nil {
		return err
	}
	if len(resp.Words) == 0 {
		fmt.Println("no words")
		return nil
	}
	for _, w := range resp.Words {
		marker := " "
		if w.Favorite {
			marker = "*"
		}
		fmt.Printf("%5d %s %-24s %s %s\n",
			w.ID, marker, w.Word, w.DateAdded.Format("2006-01-02"), w.SourceLanguage)
	}
	return nil
}

func init() {
	wordsSaveCmd.Flags().StringVar(&saveLang, "lang", "", "source language of the word")
	wordsListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of words to list")
	wordsListCmd.Flags().IntVar(&listOffset, "offset", 0, "number of words to skip")

	wordsCmd.AddCommand(wordsSaveCmd, wordsExistsCmd, wordsListCmd, wordsSearchCmd, wordsFavoritesCmd, wordsDeleteCmd, wordsFavoriteCmd)
	rootCmd.AddCommand(wordsCmd)
}
