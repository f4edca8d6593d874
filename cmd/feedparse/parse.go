// ABOUTME: Parse command that prints a normalized feed
// ABOUTME: Emits JSON by default or a colored summary, optionally discovering the feed first

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/feedparse/internal/config"
	"github.com/harper/feedparse/internal/discover"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/parse"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|url|->",
	Short: "Parse a feed into normalized JSON",
	Long: `Parse an RSS 2.0, ATOM or RDF document and print the normalized record.

The source can be a file path, an http(s) URL, or - for stdin.
Use --discover with a web page URL to find its feed first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pretty, _ := cmd.Flags().GetBool("pretty")
		summary, _ := cmd.Flags().GetBool("summary")
		useDiscover, _ := cmd.Flags().GetBool("discover")

		src := args[0]
		p := newParser()

		var (
			feed *models.Feed
			err  error
		)
		if useDiscover {
			if !parse.IsURL(src) {
				return fmt.Errorf("--discover needs an http(s) URL, got %q", src)
			}
			var found *discover.DiscoveredFeed
			found, err = discover.New(p, newClient()).Discover(cmd.Context(), src)
			if err == nil {
				logger.Info("discovered feed", "url", found.URL, "type", found.Type)
				feed = found.Feed
			}
		} else {
			feed, err = loadFeed(cmd.Context(), cmd, p, src)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if summary {
			printSummary(out, feed)
			return nil
		}
		return printJSON(out, feed, pretty)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("pretty", false, "indent JSON output")
	parseCmd.Flags().Bool("summary", false, "print a human-readable summary instead of JSON")
	parseCmd.Flags().Bool("discover", false, "treat the URL as a web page and find its feed")
}

func printJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func printSummary(w io.Writer, feed *models.Feed) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))
	title := feed.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(w, "%s %s\n", bold(title), green("["+string(feed.Type)+"]"))
	if feed.Link != "" {
		fmt.Fprintf(w, "%s %s\n", faint("Link:"), cyan(feed.Link))
	}
	if feed.Description != "" {
		fmt.Fprintf(w, "%s %s\n", faint("About:"), truncate(feed.Description, config.SummaryTitleMax))
	}
	if !feed.Image.IsZero() {
		image := feed.Image.Src
		if image == "" {
			image = feed.Image.Title
		}
		fmt.Fprintf(w, "%s %s\n", faint("Image:"), cyan(image))
	}
	fmt.Fprintf(w, "%s %s\n", faint("Language:"), feed.Language)
	if feed.LastUpdated != "" {
		fmt.Fprintf(w, "%s %s\n", faint("Updated:"), feed.LastUpdated)
	}
	fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))

	if len(feed.Items) == 0 {
		fmt.Fprintln(w, "(No items)")
		return
	}

	for i, item := range feed.Items {
		itemTitle := item.Title
		if itemTitle == "" {
			itemTitle = "(untitled)"
		}
		fmt.Fprintf(w, "%3d  %s\n", i, truncate(itemTitle, config.SummaryTitleMax))
		when := item.CreatedAt
		if when == "" {
			when = item.LastUpdated
		}
		if when != "" || item.Link != "" {
			fmt.Fprintf(w, "     %s %s\n", faint(when), cyan(item.Link))
		}
	}
	fmt.Fprintf(w, "\n%s\n", faint(fmt.Sprintf("%d items", len(feed.Items))))
}

func truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
