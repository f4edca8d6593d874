// ABOUTME: Install an agent skill describing feedparse
// ABOUTME: Embeds the skill definition and writes it under ~/.claude/skills/

package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install the feedparse agent skill",
	Long: `Install the feedparse skill for AI coding agents.

This copies the skill definition to ~/.claude/skills/feedparse/
so agents know when to reach for the feedparse tools and commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".claude", "skills", "feedparse")
		}

		path, err := installSkill(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Installed feedparse skill to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installSkillCmd)

	installSkillCmd.Flags().String("dir", "", "skill directory (default: ~/.claude/skills/feedparse)")
}

// installSkill writes the embedded SKILL.md into dir, replacing any existing
// copy, and returns the written path.
func installSkill(dir string) (string, error) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return "", fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create skill directory: %w", err)
	}

	path := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write skill file: %w", err)
	}
	return path, nil
}
