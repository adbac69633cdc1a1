package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/export"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/requestctx"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out   string
		clean bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := a.export(cmd.Context(), firstNonEmpty(out, a.cfg.Export.Dir), clean)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages to %s (build %s)\n",
				len(manifest.Pages), firstNonEmpty(out, a.cfg.Export.Dir), manifest.BuildID)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (defaults to DOCS_EXPORT_DIR)")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove the output directory first")
	return cmd
}

func (a *app) export(ctx context.Context, dir string, clean bool) (export.Manifest, error) {
	docs, err := a.router()
	if err != nil {
		return export.Manifest{}, err
	}
	exporter, err := export.New(docs, export.Site{
		Title:       a.cfg.Site.Title,
		Lang:        a.cfg.Site.Lang,
		BasePath:    a.cfg.Site.BasePath,
		Environment: a.cfg.Site.Environment,
	}, export.WithClean(clean))
	if err != nil {
		return export.Manifest{}, err
	}
	return exporter.Build(requestctx.WithLogger(ctx, a.logger), dir)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
