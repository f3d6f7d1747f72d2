package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/pagetable/internal/client"
)

func (a *App) listCmd() *cobra.Command {
	var (
		page     int
		limit    int
		width    int
		warnings bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of users",
		Long: `Fetch a single page of users from the data source and print it.

Rows that fail validation are marked with ⚠ and counted in the summary.`,
		Example: `  pagetable list
  pagetable list --page=3 --limit=20
  pagetable list --warnings`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				limit = a.config.Client.PageSize
			}
			timeout, err := a.config.ClientTimeout()
			if err != nil {
				return err
			}
			c, err := client.New(a.config.Client.BaseURL, client.WithTimeout(timeout))
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			return listUsers(cmd.Context(), cmd.OutOrStdout(), c, page, limit, PrintOpts{
				Width:    width,
				Warnings: warnings,
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Users per page (defaults to client.page_size)")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (defaults to terminal width)")
	cmd.Flags().BoolVarP(&warnings, "warnings", "w", false, "Print validation messages under invalid rows")

	return cmd
}

func listUsers(ctx context.Context, w io.Writer, c *client.Client, page, limit int, opts PrintOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := c.FetchUsers(ctx, page, limit)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	stats := Stats{Total: res.Total}
	if len(res.Data) == 0 {
		_, _ = fmt.Fprintln(w, "No users on this page.")
		PrintStats(w, stats)
		return nil
	}

	first := (res.Page - 1) * res.Limit
	stats.From = first + 1
	stats.To = first + len(res.Data)

	PrintHeader(w, res.Total, opts)
	for i, r := range res.Data {
		if PrintUserRow(w, first+i, r, res.Total, opts) {
			stats.Invalid++
		}
	}
	_, _ = fmt.Fprintln(w)
	PrintStats(w, stats)
	return nil
}
