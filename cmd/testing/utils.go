package cmdtesting

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"

	"github.com/shoal-project/shoal/cmd/cli"
)

// ExecuteTestCobraCommand runs the shoal root command with the given
// arguments and returns the executed command, everything it wrote to its
// output streams, and the execution error.
func ExecuteTestCobraCommand(args ...string) (c *cobra.Command, output string, err error) {
	return ExecuteTestCobraCommandWithStdin(nil, args...)
}

// ExecuteTestCobraCommandWithStdin is ExecuteTestCobraCommand with the
// command's stdin attached to the given reader.
func ExecuteTestCobraCommandWithStdin(stdin io.Reader, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root := cli.NewRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	c, err = root.ExecuteC()
	return c, buf.String(), err
}
