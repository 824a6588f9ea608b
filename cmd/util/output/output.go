// Package output renders command results as a table, csv, json or yaml.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

type OutputFormat string

const (
	TableFormat OutputFormat = "table"
	CSVFormat   OutputFormat = "csv"
	JSONFormat  OutputFormat = "json"
	YAMLFormat  OutputFormat = "yaml"
)

var AllFormats = []OutputFormat{TableFormat, CSVFormat, JSONFormat, YAMLFormat}

type OutputOptions struct {
	Format     OutputFormat // how to render the results
	Pretty     bool         // pretty print json and yaml output
	HideHeader bool         // hide the column headers
	NoStyle    bool         // remove all styling from table output
	Wide       bool         // print full values without truncation
}

// A TableColumn pairs go-pretty column configuration with a getter producing
// the column's value for one item. Rows appear in the order items are given,
// so callers decide the ordering.
type TableColumn[T any] struct {
	table.ColumnConfig
	Value func(T) string
}

// Output renders the items in the configured format. Table and csv output is
// shaped by the column definitions, json and yaml marshal the items directly.
func Output[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, items []T) error {
	return render(cmd, columns, options, items, items)
}

// OutputOne renders a single item, unwrapped from any list.
func OutputOne[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, item T) error {
	return render(cmd, columns, options, []T{item}, item)
}

// render writes the rows in the configured format. The json and yaml formats
// marshal doc rather than the row slice so that OutputOne can emit a bare
// object.
func render[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, items []T, doc any) error {
	switch options.Format {
	case TableFormat, CSVFormat:
		outputTable(cmd, columns, options, items)
		return nil
	case JSONFormat:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		if options.Pretty {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(doc)
	case YAMLFormat:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	default:
		return fmt.Errorf("invalid output format %q", options.Format)
	}
}

func outputTable[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, items []T) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())

	configs := lo.Map(columns, func(c TableColumn[T], i int) table.ColumnConfig {
		config := c.ColumnConfig
		config.Number = i + 1
		if options.Wide {
			config.WidthMax = 0
			config.WidthMaxEnforcer = nil
		}
		return config
	})
	tw.SetColumnConfigs(configs)

	if !options.HideHeader {
		headers := lo.Map(columns, func(c TableColumn[T], _ int) any { return c.Name })
		tw.AppendHeader(headers)
	}

	tw.SetStyle(table.StyleColoredGreenWhiteOnBlack)
	if options.NoStyle {
		tw.SetStyle(plainStyle)
	}

	for _, item := range items {
		values := lo.Map(columns, func(c TableColumn[T], _ int) any {
			return c.Value(item)
		})
		tw.AppendRow(values)
	}

	switch options.Format {
	case TableFormat:
		tw.Render()
	case CSVFormat:
		tw.RenderCSV()
	}
}

// plainStyle renders bare columns without borders or colors, for piping table
// output into other tools.
var plainStyle = table.Style{
	Name:   "StyleDefault",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}
