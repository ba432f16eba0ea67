// Command gridfmt canonicalizes grid tables inside plaintext or markdown
// documents. Every detected table is rewritten with canonical padding while
// keeping the column widths and visual width hints it already had, so
// manually widened columns survive. With -pipe-tables, GFM pipe tables are
// converted to grid tables first.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karrick/gobls"
	"github.com/karrick/gologs"

	"github.com/RedSponge/obsidian-grid-tables/gridtable"
	"github.com/RedSponge/obsidian-grid-tables/markdown"
)

var (
	optWrite      = flag.Bool("write", false, "rewrite files in place instead of printing to stdout")
	optPipeTables = flag.Bool("pipe-tables", false, "convert GFM pipe tables to grid tables first")
	optVerbose    = flag.Bool("verbose", false, "report detected tables on stderr")
)

func main() {
	flag.Parse()

	log, err := gologs.New(os.Stderr, gologs.DefaultCommandFormat)
	if err != nil {
		bail(err)
	}
	if *optVerbose {
		log.SetVerbose()
	}

	if flag.NArg() == 0 {
		formatted, err := formatReader(os.Stdin, "(stdin)", log)
		if err != nil {
			bail(err)
		}
		fmt.Print(formatted)
		return
	}

	for _, path := range flag.Args() {
		if err := formatFile(path, log); err != nil {
			bail(err)
		}
	}
}

func bail(err error) {
	fmt.Fprintf(os.Stderr, "gridfmt: %s\n", err)
	os.Exit(1)
}

func formatFile(path string, log *gologs.Logger) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	formatted, err := formatReader(fh, path, log)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if *optWrite {
		return os.WriteFile(path, []byte(formatted), 0o644)
	}
	fmt.Print(formatted)
	return nil
}

func formatReader(ior io.Reader, name string, log *gologs.Logger) (string, error) {
	var lines []string
	br := gobls.NewScanner(ior)
	for br.Scan() {
		lines = append(lines, br.Text())
	}
	if err := br.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	if *optPipeTables {
		converted := markdown.ConvertPipeTables(strings.Join(lines, "\n"))
		lines = strings.Split(converted, "\n")
	}

	regions := gridtable.FindTables(lines)
	log.Verbose("%s: %d grid tables", name, len(regions))

	for i := len(regions) - 1; i >= 0; i-- {
		region := regions[i]
		log.Debug("%s: table at lines %d-%d (%d rows, %d columns)",
			name, region.Start+1, region.End, region.Table.RowCount(), region.Table.ColumnCount())

		canonical := gridtable.Serialize(region.Table, gridtable.SerializeOptions{
			BaseWidths:   region.Layout.ColumnLengths,
			VisualWidths: region.Layout.VisualWidths,
		})
		replaced := append([]string{}, lines[:region.Start]...)
		replaced = append(replaced, strings.Split(canonical, "\n")...)
		replaced = append(replaced, lines[region.End:]...)
		lines = replaced
	}

	return strings.Join(lines, "\n") + "\n", nil
}
