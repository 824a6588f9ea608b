package explain

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shoal-project/shoal/cmd/util/flags"
	"github.com/shoal-project/shoal/cmd/util/output"
	"github.com/shoal-project/shoal/pkg/cluster"
	"github.com/shoal-project/shoal/pkg/lib/math"
	"github.com/shoal-project/shoal/pkg/lib/validate"
	"github.com/shoal-project/shoal/pkg/models"
	"github.com/shoal-project/shoal/pkg/selector"
)

// maxShownPatterns bounds the index column of the table output.
const maxShownPatterns = 3

type ExplainOptions struct {
	StateFile  string
	DatafeedID string
	Strict     bool
	OutputOpts output.OutputOptions
}

func NewExplainOptions() *ExplainOptions {
	return &ExplainOptions{
		StateFile:  viper.GetString("STATE_FILE"),
		OutputOpts: output.OutputOptions{Format: output.TableFormat},
	}
}

func NewCmd() *cobra.Command {
	o := NewExplainOptions()

	explainCmd := &cobra.Command{
		Use:   "explain",
		Short: "Run the node-assignment decision for datafeeds against a cluster state file",
		Long: `Load a cluster state description from a yaml file and report, for each
datafeed (or the one given with --datafeed), which node it would be assigned
to, or the explanation why no node could be selected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.Run(cmd)
		},
	}

	explainCmd.Flags().StringVar(&o.StateFile, "state", o.StateFile,
		"Path to the cluster state yaml file. Defaults to $SHOAL_STATE_FILE.")
	explainCmd.Flags().StringVar(&o.DatafeedID, "datafeed", o.DatafeedID,
		"Explain a single datafeed instead of every datafeed in the state file")
	explainCmd.Flags().BoolVar(&o.Strict, "strict", o.Strict,
		"Exit with an error when a datafeed has no node, mirroring the pre-flight admission check")
	explainCmd.Flags().AddFlagSet(flags.OutputFormatFlags(&o.OutputOpts))

	return explainCmd
}

type explainRow struct {
	DatafeedID  string `json:"DatafeedID"`
	JobID       string `json:"JobID"`
	Indexes     string `json:"Indexes"`
	NodeID      string `json:"NodeID,omitempty"`
	Explanation string `json:"Explanation,omitempty"`
}

var explainColumns = []output.TableColumn[explainRow]{
	{
		ColumnConfig: table.ColumnConfig{Name: "datafeed"},
		Value:        func(r explainRow) string { return r.DatafeedID },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "job"},
		Value:        func(r explainRow) string { return r.JobID },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "indexes"},
		Value:        func(r explainRow) string { return r.Indexes },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "node"},
		Value:        func(r explainRow) string { return r.NodeID },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "explanation", WidthMax: 80},
		Value:        func(r explainRow) string { return r.Explanation },
	},
}

func (o *ExplainOptions) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if validate.IsBlank(o.StateFile) {
		return fmt.Errorf("--state is required")
	}
	if err := validate.FileExists(o.StateFile, "state file %s does not exist", o.StateFile); err != nil {
		return err
	}

	snap, err := cluster.LoadStateFile(o.StateFile)
	if err != nil {
		return fmt.Errorf("loading state file: %w", err)
	}

	var feeds []*models.Datafeed
	if o.DatafeedID != "" {
		datafeed, ok := snap.Datafeed(o.DatafeedID)
		if !ok {
			return selector.NewErrDatafeedNotFound(o.DatafeedID)
		}
		feeds = []*models.Datafeed{datafeed}
	} else {
		feeds = snap.Datafeeds()
	}

	rows := make([]explainRow, 0, len(feeds))
	for _, datafeed := range feeds {
		assignment, err := selector.SelectNode(ctx, snap, datafeed.ID)
		if err != nil {
			return err
		}
		rows = append(rows, explainRow{
			DatafeedID:  datafeed.ID,
			JobID:       datafeed.JobID,
			Indexes:     summarizePatterns(datafeed.Indexes),
			NodeID:      assignment.NodeID,
			Explanation: assignment.Explanation,
		})
	}

	if err := output.Output(cmd, explainColumns, o.OutputOpts, rows); err != nil {
		return err
	}

	if o.Strict {
		for _, datafeed := range feeds {
			if err := selector.EnsureAssignable(ctx, snap, datafeed.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// summarizePatterns keeps the index column readable for datafeeds that read
// many patterns.
func summarizePatterns(patterns []string) string {
	shown := patterns[:math.Min(len(patterns), maxShownPatterns)]
	summary := strings.Join(shown, ",")
	if len(patterns) > maxShownPatterns {
		summary += fmt.Sprintf(",+%d more", len(patterns)-maxShownPatterns)
	}
	return summary
}
