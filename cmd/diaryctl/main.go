package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "diaryctl",
		Short: "CLI client for the diary backend REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8000", "Diary service base URL")

	// login subcommand
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify an identity token against the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			return runLogin(apiFlag, token, os.Stdout)
		},
	}
	loginCmd.Flags().StringP("token", "t", "", "Identity token (required)")
	_ = loginCmd.MarkFlagRequired("token")
	rootCmd.AddCommand(loginCmd)

	// entries subcommand tree
	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "Create and list diary entries",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new entry from text, an image file and/or an audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			image, _ := cmd.Flags().GetString("image")
			audio, _ := cmd.Flags().GetString("audio")
			token, _ := cmd.Flags().GetString("token")
			if text == "" && image == "" && audio == "" {
				return fmt.Errorf("at least one of --text, --image, --audio required")
			}
			return runAddEntry(apiFlag, token, text, image, audio, os.Stdout)
		},
	}
	addCmd.Flags().StringP("text", "t", "", "Entry text")
	addCmd.Flags().StringP("image", "i", "", "Path to an image file")
	addCmd.Flags().StringP("audio", "u", "", "Path to a WAV audio file")
	addCmd.Flags().String("token", "", "Bearer token (when the service requires auth)")
	entriesCmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			return runListEntries(apiFlag, token, os.Stdout)
		},
	}
	listCmd.Flags().String("token", "", "Bearer token (when the service requires auth)")
	entriesCmd.AddCommand(listCmd)
	rootCmd.AddCommand(entriesCmd)

	// search subcommand
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search entry text",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			token, _ := cmd.Flags().GetString("token")
			return runSearch(apiFlag, token, query, os.Stdout)
		},
	}
	searchCmd.Flags().StringP("query", "q", "", "Search query text (required)")
	searchCmd.Flags().String("token", "", "Bearer token (when the service requires auth)")
	_ = searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
