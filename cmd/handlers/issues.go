package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/r8slab/the-drop/internal/config"
	"github.com/r8slab/the-drop/internal/store"
	"github.com/r8slab/the-drop/internal/tui"
)

// NewIssuesCmd creates the issues command group
func NewIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Browse and inspect archived issues",
		Long:  `List, show, and browse the issues archived by previous runs.`,
	}

	cmd.AddCommand(NewIssuesListCmd())
	cmd.AddCommand(NewIssuesShowCmd())
	cmd.AddCommand(NewIssuesBrowseCmd())

	return cmd
}

// NewIssuesListCmd creates the issues list command
func NewIssuesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived issues",
		Long: `List recently archived issues, newest first.

Examples:
  # List the last 10 issues
  the-drop issues list

  # List the last 30 issues
  the-drop issues list --limit 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return issuesListRun(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of issues to list")

	return cmd
}

func issuesListRun(limit int) error {
	archive, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open issue store: %w", err)
	}
	defer archive.Close()

	issues, err := archive.ListIssues(limit)
	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	if len(issues) == 0 {
		fmt.Println("No issues archived yet")
		fmt.Println("💡 Run 'the-drop run' to generate one")
		return nil
	}

	fmt.Printf("\n📄 Archived Issues\n")
	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Printf("%-8s  %-12s  %-36s  %s\n", "ID", "Date", "Subject", "Emails")
	fmt.Println("───────────────────────────────────────────────────────────────────")

	for _, issue := range issues {
		subject := issue.Subject
		if len(subject) > 36 {
			subject = subject[:33] + "..."
		}
		fmt.Printf("%-8s  %-12s  %-36s  %d\n",
			shortID(issue.ID), issue.DateGenerated.Format("Jan 02, 2006"), subject, issue.EmailCount)
	}

	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Printf("\n💡 Use 'the-drop issues show <id>' to view a specific issue\n")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// NewIssuesShowCmd creates the issues show command
func NewIssuesShowCmd() *cobra.Command {
	var htmlOut string

	cmd := &cobra.Command{
		Use:   "show <issue-id>",
		Short: "Display a specific archived issue",
		Long: `Show detailed information about an archived issue. The ID may be any
unique prefix of the full issue ID.

Examples:
  # Show an issue by ID prefix
  the-drop issues show 1f0c

  # Write the issue HTML to a file
  the-drop issues show 1f0c --html-out issue.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return issuesShowRun(args[0], htmlOut)
		},
	}

	cmd.Flags().StringVar(&htmlOut, "html-out", "", "Write the issue HTML to this file")

	return cmd
}

func issuesShowRun(idOrPrefix string, htmlOut string) error {
	archive, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open issue store: %w", err)
	}
	defer archive.Close()

	issue, err := archive.FindIssue(idOrPrefix)
	if err != nil {
		return fmt.Errorf("failed to find issue: %w", err)
	}
	if issue == nil {
		fmt.Fprintf(os.Stderr, "💡 Use 'the-drop issues list' to see archived issues\n")
		return fmt.Errorf("no issue matches %q", idOrPrefix)
	}

	fmt.Printf("\n📄 %s\n", issue.Subject)
	fmt.Println(strings.Repeat("═", 80))
	fmt.Printf("ID:           %s\n", issue.ID)
	fmt.Printf("Generated:    %s\n", issue.DateGenerated.Format("January 2, 2006 15:04"))
	fmt.Printf("Model:        %s\n", issue.ModelUsed)
	fmt.Printf("Emails:       %d\n", issue.EmailCount)
	if issue.MarketImage != "" {
		fmt.Printf("Market image: %s\n", issue.MarketImage)
	}

	if len(issue.Sections) > 0 {
		fmt.Println("\n📝 Sections")
		fmt.Println(strings.Repeat("─", 80))
		for _, name := range issue.Sections {
			fmt.Printf("  • %s\n", name)
		}
	}
	fmt.Println(strings.Repeat("═", 80))

	if htmlOut != "" {
		if err := os.WriteFile(htmlOut, []byte(issue.HTML), 0644); err != nil {
			return fmt.Errorf("failed to write issue HTML: %w", err)
		}
		fmt.Printf("\n✅ Issue HTML written to %s\n", htmlOut)
	}

	return nil
}

// NewIssuesBrowseCmd creates the issues browse command
func NewIssuesBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse archived issues in the terminal",
		Long:  `Launch a terminal browser over the archived issues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return issuesBrowseRun()
		},
	}
}

func issuesBrowseRun() error {
	archive, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open issue store: %w", err)
	}
	defer archive.Close()

	issues, err := archive.ListIssues(0)
	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	fmt.Println("Launching issue browser...")
	return tui.Start(issues)
}
