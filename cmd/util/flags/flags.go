// Package flags defines pflag bindings for types cobra has no native flag
// for, plus the flag sets shared across commands.
package flags

import (
	"fmt"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/shoal-project/shoal/cmd/util/output"
	"github.com/shoal-project/shoal/pkg/logger"
)

// A Parser converts a command line string into a native value.
type Parser[T any] func(string) (T, error)

// A Stringer renders the current value back into a string for help output.
type Stringer[T any] func(*T) string

// A ValueFlag adapts any parseable type into a pflag.Value.
type ValueFlag[T any] struct {
	value    *T
	parser   Parser[T]
	stringer Stringer[T]
	typeStr  string
}

var _ pflag.Value = (*ValueFlag[int])(nil)

func (f *ValueFlag[T]) Set(input string) error {
	value, err := f.parser(input)
	*f.value = value
	return err
}

func (f *ValueFlag[T]) String() string {
	return f.stringer(f.value)
}

func (f *ValueFlag[T]) Type() string {
	return f.typeStr
}

func OutputFormatFlag(value *output.OutputFormat) *ValueFlag[output.OutputFormat] {
	return &ValueFlag[output.OutputFormat]{
		value: value,
		parser: func(s string) (output.OutputFormat, error) {
			format := output.OutputFormat(s)
			if !slices.Contains(output.AllFormats, format) {
				return "", fmt.Errorf("should be one of %q", output.AllFormats)
			}
			return format, nil
		},
		stringer: func(o *output.OutputFormat) string { return string(*o) },
		typeStr:  "format",
	}
}

func LoggingFlag(value *logger.LogMode) *ValueFlag[logger.LogMode] {
	return &ValueFlag[logger.LogMode]{
		value:    value,
		parser:   logger.ParseLogMode,
		stringer: func(m *logger.LogMode) string { return string(*m) },
		typeStr:  "logging-mode",
	}
}

// OutputFormatFlags returns the flag set shared by every command that renders
// results through the output package.
func OutputFormatFlags(format *output.OutputOptions) *pflag.FlagSet {
	flagset := pflag.NewFlagSet("Output Format", pflag.ContinueOnError)

	flagset.Var(OutputFormatFlag(&format.Format), "output",
		fmt.Sprintf(`The output format for the command (one of %q)`, output.AllFormats))
	flagset.BoolVar(&format.Pretty, "pretty", format.Pretty,
		`Pretty print the output. Only applies to json and yaml output formats.`)
	flagset.BoolVar(&format.HideHeader, "hide-header", format.HideHeader,
		`do not print the column headers.`)
	flagset.BoolVar(&format.NoStyle, "no-style", format.NoStyle,
		`remove all styling from table output.`)
	flagset.BoolVar(&format.Wide, "wide", format.Wide,
		`Print full values in the table results without truncation`)

	return flagset
}
