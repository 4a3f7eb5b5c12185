package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cosmodist/store"
)

var dbPath string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage stored distance tables",
	Long: `Saves, lists, inspects and deletes distance tables in a SQLite archive.

Examples:
  cosmodist table save --cosmo 2
  cosmodist table list
  cosmodist table load <id>
  cosmodist table delete <id>`,
}

var tableSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Build the selected cosmology's table and store it",
	Args:  cobra.NoArgs,
	RunE:  runTableSave,
}

var tableListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tables",
	Args:  cobra.NoArgs,
	RunE:  runTableList,
}

var tableLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Restore a stored table and print its summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runTableLoad,
}

var tableDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTableDelete,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.AddCommand(tableSaveCmd, tableListCmd, tableLoadCmd, tableDeleteCmd)

	tableCmd.PersistentFlags().StringVar(&dbPath, "db", "cosmodist.db", "SQLite archive path")
}

func withStore(fn func(context.Context, *store.Store) error) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(context.Background(), s)
}

func runTableSave(cmd *cobra.Command, _ []string) error {
	m, err := selectedModel()
	if err != nil {
		return err
	}

	return withStore(func(ctx context.Context, s *store.Store) error {
		rec, err := s.Save(ctx, m)
		if err != nil {
			return err
		}
		logger.Debug("table saved", "id", rec.ID, "db", dbPath)
		fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
		return nil
	})
}

func runTableList(cmd *cobra.Command, _ []string) error {
	return withStore(func(ctx context.Context, s *store.Store) error {
		recs, err := s.List(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(w, "no stored tables")
			return nil
		}
		fmt.Fprintf(w, "%-36s  %-8s  %-44s  %s\n", "ID", "ROWS", "PARAMS", "CREATED")
		fmt.Fprintln(w, strings.Repeat("-", 110))
		for _, rec := range recs {
			fmt.Fprintf(w, "%-36s  %-8d  %-44v  %s\n",
				rec.ID, rec.Rows, rec.Params, rec.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	})
}

func runTableLoad(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, s *store.Store) error {
		m, err := s.Load(ctx, args[0])
		if err != nil {
			return err
		}
		t := m.Table()

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "params: %v\n", m.Params())
		fmt.Fprintf(w, "rows:   %d\n", t.Len())
		fmt.Fprintf(w, "z:      [%g, %g]\n", t.ZMin(), t.ZMax())
		fmt.Fprintf(w, "r:      [%.4f, %.4f]\n", t.RMin(), t.RMax())
		return nil
	})
}

func runTableDelete(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, s *store.Store) error {
		if err := s.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	})
}
