package handlers

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/r8slab/the-drop/internal/config"
	"github.com/r8slab/the-drop/internal/generator"
	"github.com/r8slab/the-drop/internal/gmail"
	"github.com/r8slab/the-drop/internal/llm"
	"github.com/r8slab/the-drop/internal/store"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var (
		preview     bool
		previewFile string
		days        int
		includeRead bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch newsletters and generate today's issue",
		Long: `Fetch labeled newsletters from the source Gmail account, generate an
issue with Gemini, and send it from the sender account.

Examples:
  # Generate and send today's issue
  the-drop run

  # Render the issue to preview.html without sending
  the-drop run --preview

  # Rebuild from the last two days, including read emails
  the-drop run --days 2 --include-read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, generator.Options{
				Preview:     preview,
				PreviewFile: previewFile,
				DaysBack:    days,
				IncludeRead: includeRead,
			})
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "Render the issue to a local file instead of sending")
	cmd.Flags().StringVar(&previewFile, "preview-file", "preview.html", "Output file for preview")
	cmd.Flags().IntVar(&days, "days", 0, "Fetch emails from the last N days (default: since last run)")
	cmd.Flags().BoolVar(&includeRead, "include-read", false, "Include read emails (default: unread only)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generator.Options) error {
	startTime := time.Now()
	ctx := cmd.Context()

	if opts.Preview {
		fmt.Println("🔍 Preview mode, no email will be sent")
	}

	mail, err := gmail.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create Gmail client: %w", err)
	}

	model, err := llm.NewClient(config.GetGeminiModel())
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer model.Close()

	archive, err := store.NewStore(config.GetDataDir())
	if err != nil {
		return fmt.Errorf("failed to open issue store: %w", err)
	}
	defer archive.Close()

	if err := generator.New(mail, model, archive).Run(ctx, opts); err != nil {
		return err
	}

	fmt.Printf("\n✅ Done in %s\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}
