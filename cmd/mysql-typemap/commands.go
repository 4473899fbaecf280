package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"

	"mysql-typemap/internal/analyze"
	"mysql-typemap/internal/config"
	"mysql-typemap/internal/match"
	"mysql-typemap/internal/report"
	"mysql-typemap/typemap"
)

func runColumns(
	ctx context.Context,
	cfg *config.Config,
	resolver typemap.Resolver,
	logger *slog.Logger,
	args []string,
	stdout, stderr io.Writer,
) error {
	fs := flag.NewFlagSet("columns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.Format, "Report format (text, yaml)")
	dump := fs.Bool("dump", false, "Dump resolved tables with go-spew to stderr")
	dir := fs.String("dir", "", "Directory to resolve package patterns in")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("columns: missing package patterns")
	}

	analyzer := analyze.NewAnalyzer(cfg.Tag)
	analyzer.SetDir(*dir)

	graph, err := analyzer.LoadPackages(fs.Args()...)
	if err != nil {
		return err
	}
	logger.Debug("loaded packages", "packages", len(graph.Packages), "structs", len(graph.Structs))

	r, err := report.NewBuilder(resolver, logger).Build(ctx, graph)
	if err != nil {
		return err
	}

	if *dump {
		spew.Fdump(stderr, r.Tables)
	}

	switch *format {
	case config.FormatYAML:
		err = r.WriteYAML(stdout)
	case config.FormatText:
		err = r.WriteText(stdout)
	default:
		return fmt.Errorf("unsupported report format %q", *format)
	}
	if err != nil {
		return err
	}

	for _, w := range r.Diagnostics.Warnings {
		logger.Warn(w.Message, "struct", w.Struct, "field", w.Field, "code", w.Code)
	}
	for _, e := range r.Diagnostics.Errors {
		logger.Error(e.Message, "struct", e.Struct, "field", e.Field, "code", e.Code)
	}

	if r.Diagnostics.HasErrors() {
		return fmt.Errorf("%d field(s) could not be mapped", len(r.Diagnostics.Errors))
	}

	return nil
}

func runLookup(resolver *typemap.MySQL, names []string, stdout io.Writer) error {
	if len(names) == 0 {
		return errors.New("lookup: missing store type names")
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTORE TYPE\tDB TYPE\tSIZE\tUNICODE")

	var missing []string
	for _, name := range names {
		m, ok := resolver.FindMappingByName(name)
		if !ok {
			missing = append(missing, name)
			continue
		}

		size := "-"
		if n, ok := m.Size(); ok {
			size = fmt.Sprint(n)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", name, m.StoreType(), m.DbType(), size, m.IsUnicode())
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, name := range missing {
		if hints := match.Suggest(name, resolver.Registry().Names(), 2, 3); len(hints) > 0 {
			fmt.Fprintf(stdout, "%s: did you mean %s?\n", name, strings.Join(hints, ", "))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("unknown store type(s): %v", missing)
	}

	return nil
}

func runTypes(resolver *typemap.MySQL, stdout io.Writer) error {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GO TYPE\tSTORE TYPE\tDB TYPE")

	for _, t := range resolver.Registry().ValueTypes() {
		m := resolver.FindMapping(t)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t, m.StoreType(), m.DbType())
	}

	return tw.Flush()
}
