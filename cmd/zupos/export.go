package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"zupos/filter"
	"zupos/htmlview"
	"zupos/util"
)

var (
	exportSearch string
	exportPage   int
	exportSize   int
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportSearch, "search", "s", "", "Quick search applied before paging")
	cmd.Flags().IntVar(&exportPage, "page", 1, "Page to export, 1-based")
	cmd.Flags().IntVar(&exportSize, "size", 0, "Rows per page, 0 for the configured size")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [output.html]",
		Short: "Write a page of the store table as html",
		Long: `The export command renders one page of the desktop table, with the
configured filters and sort, to a static html file or to stdout.

Example:
  zupos export stores.html
  zupos export --search depo --page 2 > depo.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "-"
			if len(args) > 0 {
				out = args[0]
			}
			return runExport(cmd.Context(), out)
		},
	}
}

func runExport(ctx context.Context, out string) (err error) {

	cfg, err := loadConfig()
	if err != nil {
		return
	}

	file := util.OpenLog(cfg.LogFile, fileMode)
	defer util.CloseLog(file)
	lgr := newLogger(file)

	dk, err := openStore(ctx, cfg, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	stores, err := dk.List(ctx)
	if err != nil {
		return
	}

	pgn := cfg.Pagination
	pgn.Page = exportPage - 1
	if exportSize > 0 {
		pgn.PageSize = exportSize
	}

	filters := filter.QuickSearch(cfg.Filters, cfg.Columns, exportSearch)
	opt := htmlview.Options{Title: "Store definitions", Empty: cfg.Grid.Empty, Status: cfg.Grid.Status}
	page := htmlview.Build(opt, cfg.Columns, stores, filters, cfg.Sort, pgn)

	rdr, err := htmlview.NewRenderer()
	if err != nil {
		return
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		var fh *os.File
		fh, err = os.Create(out)
		if err != nil {
			err = errors.Wrapf(err, "failed to create %s", out)
			return
		}
		defer fh.Close()
		w = fh
	}

	err = rdr.Render(w, page)
	if err != nil {
		return
	}

	lgr.Info(ctx, "exported", "rows", len(page.Rows), "out", out, "filters", len(filters))
	return
}
