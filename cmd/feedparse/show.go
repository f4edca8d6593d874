// ABOUTME: Show command for reading one feed item
// ABOUTME: Renders the item as Markdown in the terminal with glamour

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/feedparse/internal/content"
)

var showCmd = &cobra.Command{
	Use:   "show <file|url|-> <index>",
	Short: "Show one item of a feed",
	Long:  "Display one item, selected by its zero-based position, with its content rendered as Markdown",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		style, _ := cmd.Flags().GetString("style")

		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}

		feed, err := loadFeed(cmd.Context(), cmd, newParser(), args[0])
		if err != nil {
			return err
		}
		if index < 0 || index >= len(feed.Items) {
			return fmt.Errorf("item %d out of range: feed has %d items", index, len(feed.Items))
		}

		item := feed.Items[index]
		markdown := content.ItemMarkdown(&item)
		out := cmd.OutOrStdout()

		if raw {
			fmt.Fprintln(out, markdown)
			return nil
		}

		rendered, err := glamour.Render(markdown, style)
		if err != nil {
			faint := color.New(color.Faint).SprintFunc()
			fmt.Fprintf(out, "%s\n", faint("(markdown rendering unavailable, showing plain text)"))
			fmt.Fprintf(out, "\n%s\n", markdown)
			return nil
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("raw", false, "print Markdown without terminal rendering")
	showCmd.Flags().String("style", "dark", "glamour style: dark, light, notty, ascii")
}
