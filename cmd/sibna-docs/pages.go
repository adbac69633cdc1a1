package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the registered pages in navigation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.router()
			if err != nil {
				return err
			}
			reg := docs.Registry()

			heading := color.New(color.FgYellow, color.Bold).SprintFunc()
			id := color.New(color.FgCyan).SprintFunc()
			faint := color.New(color.Faint).SprintFunc()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, group := range docs.Menu() {
				fmt.Fprintln(w, heading(group.Label))
				for _, entry := range group.Entries {
					page, _ := reg.Lookup(entry.ID)
					marker := ""
					if entry.ID == docs.DefaultPageID() {
						marker = faint("(default)")
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", id(entry.ID), entry.Label, faint(string(page.Source)), marker)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pages\n", reg.Len())
			return nil
		},
	}
}
