package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/templates"
)

func newRenderCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "render <page-id>",
		Short: "Print the content a page id resolves to",
		Long: `render prints the fragment the router places in the content container for
the given page id. Unknown ids print the fallback fragment, and close matches
are suggested on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.router()
			if err != nil {
				return err
			}
			view := docs.Load(args[0])

			out := cmd.OutOrStdout()
			if full {
				err = templates.Page(templates.LayoutData{
					SiteTitle:   a.cfg.Site.Title,
					Lang:        a.cfg.Site.Lang,
					BasePath:    a.cfg.Site.BasePath,
					Environment: a.cfg.Site.Environment,
					View:        view,
				}).Render(cmd.Context(), out)
				if err != nil {
					return fmt.Errorf("render %s: %w", args[0], err)
				}
			} else {
				fmt.Fprintln(out, view.Content)
			}

			if !view.Found {
				msg := fmt.Sprintf("page %q is not registered", args[0])
				if matches := suggest(args[0], docs.Registry().IDs()); len(matches) > 0 {
					msg += "; did you mean " + strings.Join(matches, ", ") + "?"
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print the complete HTML document instead of the fragment")
	return cmd
}
