package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"memberadmin/internal/members"
	"memberadmin/internal/provider"
)

func newDumpCmd(opts *options) *cobra.Command {
	var query string
	var page int

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print one page of members without starting the interactive table.",
		Long: "`dump --query Q --page N` loads the members, applies the same " +
			"search and pagination as the table and prints the page.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts, cmd.ErrOrStderr())
			closeLog := setupLogging(cfg.LogFile)
			defer closeLog()

			p, err := provider.New(cfg.Source)
			if err != nil {
				return err
			}
			loader := provider.NewLoader(p, nil, provider.LoaderOptions{StrictIDs: cfg.StrictIDs})
			return dump(cmd.Context(), cmd.OutOrStdout(), loader, query, page)
		},
	}

	dumpCmd.Flags().StringVarP(&query, "query", "q", "", "search query")
	dumpCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return dumpCmd
}

// dump loads members and writes one page as a table followed by the page
// indicator
func dump(ctx context.Context, w io.Writer, loader *provider.Loader, query string, page int) error {
	records, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	s := members.NewState()
	s.Load(records)
	s.SetQuery(query)
	s.ChangePage(page)
	view := s.View()

	if len(view.Rows) == 0 {
		if query != "" {
			fmt.Fprintf(w, "No members match %q\n", query)
		} else {
			fmt.Fprintln(w, "No members")
		}
		return nil
	}

	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.ID, row.Name, row.Email, row.Member.ExtraString("role")})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "EMAIL", "ROLE").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Page %d of %d (%d of %d members)\n", view.Page, view.TotalPages, view.FilteredCount, view.TotalCount)
	return nil
}
