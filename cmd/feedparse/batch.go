// ABOUTME: Batch command that parses every feed in an OPML subscription list
// ABOUTME: Fetches feeds concurrently, reports per-feed results, and can export a normalized OPML

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/harper/feedparse/internal/opml"
	"github.com/harper/feedparse/internal/parse"
)

// batchResult is the outcome of parsing one subscription.
type batchResult struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Folder    string `json:"folder,omitempty"`
	Type      string `json:"type,omitempty"`
	ItemCount int    `json:"item_count"`
	Error     string `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <subscriptions.opml>",
	Short: "Parse every feed in an OPML file",
	Long: `Parse every feed listed in an OPML subscription list.

Feeds are fetched concurrently. Each feed gets one result line; a failing
feed is reported and does not stop the others. Use --export to write a
normalized OPML file with titles and types taken from the parsed feeds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		jobs, _ := cmd.Flags().GetInt("jobs")
		exportPath, _ := cmd.Flags().GetString("export")

		doc, err := opml.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read subscriptions: %w", err)
		}
		if len(doc.Subscriptions) == 0 {
			return fmt.Errorf("no feeds found in %s", args[0])
		}

		results := runBatch(cmd.Context(), newParser(), doc.Subscriptions, jobs)

		if exportPath != "" {
			if err := exportResults(doc.Title, results).WriteFile(exportPath); err != nil {
				return fmt.Errorf("failed to export OPML: %w", err)
			}
			logger.Info("exported subscriptions", "path", exportPath)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			if err := printJSON(out, results, true); err != nil {
				return err
			}
		} else {
			printBatch(out, results)
		}

		failed := 0
		for _, r := range results {
			if r.Error != "" {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d feeds failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Bool("json", false, "print results as a JSON array")
	batchCmd.Flags().Int("jobs", 4, "number of feeds to fetch at once")
	batchCmd.Flags().String("export", "", "write a normalized OPML file to this path")
}

// runBatch parses each subscription and returns results in input order.
func runBatch(ctx context.Context, p *parse.Parser, subs []opml.Subscription, jobs int) []batchResult {
	results := make([]batchResult, len(subs))
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, sub := range subs {
		g.Go(func() error {
			r := batchResult{URL: sub.URL, Title: sub.Title, Folder: sub.Folder, Type: sub.Type}
			feed, err := p.ParseURL(ctx, sub.URL)
			if err != nil {
				logger.Warn("feed failed", "url", sub.URL, "err", err)
				r.Error = err.Error()
			} else {
				if feed.Title != "" {
					r.Title = feed.Title
				}
				r.Type = string(feed.Type)
				r.ItemCount = len(feed.Items)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// exportResults builds an OPML document from batch results. Failed feeds
// keep the title and type they were listed with.
func exportResults(title string, results []batchResult) *opml.Document {
	if title == "" {
		title = "feedparse subscriptions"
	}
	doc := &opml.Document{Title: title}
	for _, r := range results {
		doc.Subscriptions = append(doc.Subscriptions, opml.Subscription{
			URL:    r.URL,
			Title:  r.Title,
			Folder: r.Folder,
			Type:   opmlType(r.Type),
		})
	}
	return doc
}

// opmlType lowercases a feed type for the outline type attribute.
func opmlType(t string) string {
	switch t {
	case "RSS":
		return "rss"
	case "ATOM":
		return "atom"
	case "RDF":
		return "rdf"
	}
	return t
}

func printBatch(w io.Writer, results []batchResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	ok := 0
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%s %s %s\n", red("✗"), r.URL, faint(r.Error))
			continue
		}
		ok++
		fmt.Fprintf(w, "%s %s %s %s\n", green("✓"), r.Title, faint("("+r.Type+")"), faint(fmt.Sprintf("%d items", r.ItemCount)))
	}
	fmt.Fprintf(w, "\n%d/%d feeds parsed\n", ok, len(results))
}
