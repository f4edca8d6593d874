// ABOUTME: Discover command to find the feed behind a web page
// ABOUTME: Prints the feed URL, type, and title with colored output

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/feedparse/internal/discover"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Find the feed for a web page",
	Long: `Find an RSS, ATOM or RDF feed starting from any page URL.

Tries the URL itself, then <link rel="alternate"> tags in the page,
then common feed paths such as /feed.xml, /atom.xml and /index.rdf.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		found, err := discover.New(newParser(), newClient()).Discover(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			itemCount := 0
			if found.Feed != nil {
				itemCount = len(found.Feed.Items)
			}
			return printJSON(out, map[string]any{
				"url":        found.URL,
				"title":      found.Title,
				"type":       found.Type,
				"item_count": itemCount,
			}, true)
		}

		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(out, "%s %s %s\n", green("✓"), found.URL, faint("("+string(found.Type)+")"))
		if found.Title != "" {
			fmt.Fprintf(out, "  %s %s\n", faint("Title:"), found.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().Bool("json", false, "print the result as JSON")
}
