package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page as a standalone HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := exportPages(cmd.Context(), out, models.AllPages)
			report(cmd.OutOrStdout(), written, err)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

// exportPages renders pages concurrently into dir as <page>.html and returns
// the files it wrote, in page order.
func exportPages(ctx context.Context, dir string, ps []models.Page) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	done := make(map[models.Page]string, len(ps))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for _, p := range ps {
		eg.Go(func() error {
			path := filepath.Join(dir, p.String()+".html")
			err := writeFile(path, func(w io.Writer) error {
				return renderPage(egCtx, w, p)
			})
			if err != nil {
				return fmt.Errorf("export %s: %w", p, err)
			}
			mu.Lock()
			done[p] = path
			mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()

	written := make([]string, 0, len(done))
	for _, p := range ps {
		if path, ok := done[p]; ok {
			written = append(written, path)
		}
	}
	return written, err
}

func report(w io.Writer, written []string, err error) {
	green := color.New(color.FgHiGreen)
	red := color.New(color.FgHiRed)
	for _, path := range written {
		green.Fprint(w, "  ✓ ")
		fmt.Fprintln(w, path)
	}
	if err != nil {
		red.Fprintf(w, "  ✗ %v\n", err)
		return
	}
	color.New(color.FgHiWhite).Fprintf(w, "%d pages exported\n", len(written))
}
