package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/pages"
)

func renderCmd() *cobra.Command {
	var page string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one page as HTML to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPage(cmd.Context(), cmd.OutOrStdout(), pages.Parse(page))
		},
	}
	cmd.Flags().StringVar(&page, "page", string(models.PageHome), "page id; unknown ids render home")
	return cmd
}

func renderPage(ctx context.Context, w io.Writer, p models.Page) error {
	reg, err := content.Load()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := pages.Document(p, pages.Deps{Content: reg}).Render(ctx, w); err != nil {
		return fmt.Errorf("render %s: %w", p, err)
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
