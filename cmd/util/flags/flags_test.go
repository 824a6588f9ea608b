//go:build unit || !integration

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoal-project/shoal/cmd/util/output"
	"github.com/shoal-project/shoal/pkg/logger"
)

func TestOutputFormatFlag(t *testing.T) {
	format := output.TableFormat
	flag := OutputFormatFlag(&format)

	require.NoError(t, flag.Set("json"))
	assert.Equal(t, output.JSONFormat, format)
	assert.Equal(t, "json", flag.String())
	assert.Equal(t, "format", flag.Type())

	assert.Error(t, flag.Set("xml"))
}

func TestLoggingFlag(t *testing.T) {
	mode := logger.LogModeDefault
	flag := LoggingFlag(&mode)

	require.NoError(t, flag.Set("json"))
	assert.Equal(t, logger.LogModeJSON, mode)

	// parsing is case insensitive, matching ParseLogMode
	require.NoError(t, flag.Set("Combined"))
	assert.Equal(t, logger.LogModeCombined, mode)

	assert.Error(t, flag.Set("verbose"))
}

func TestOutputFormatFlags(t *testing.T) {
	opts := output.OutputOptions{Format: output.TableFormat}
	flagset := OutputFormatFlags(&opts)

	require.NoError(t, flagset.Parse([]string{"--output", "yaml", "--pretty", "--wide"}))
	assert.Equal(t, output.YAMLFormat, opts.Format)
	assert.True(t, opts.Pretty)
	assert.True(t, opts.Wide)
	assert.False(t, opts.HideHeader)

	assert.Error(t, flagset.Parse([]string{"--output", "xml"}))
}
