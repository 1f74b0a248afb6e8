package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sarchlab/conveyorsim/datarecording"
	"github.com/sarchlab/conveyorsim/tracing"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	traceCmd := &cobra.Command{
		Use:   "trace [database]",
		Short: "Print the entries and exits stored by run --record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, _ := cmd.Flags().GetString("event")
			limit, _ := cmd.Flags().GetInt("limit")

			return printTrace(cmd.Context(), cmd.OutOrStdout(), args[0],
				event, limit)
		},
	}

	traceCmd.Flags().String("event", "",
		"Only show \""+tracing.EventEntered+"\" or \""+
			tracing.EventExited+"\" events")
	traceCmd.Flags().Int("limit", 0, "Maximum number of rows, 0 for all")

	return traceCmd
}

func init() {
	rootCmd.AddCommand(newTraceCmd())
}

func printTrace(
	ctx context.Context,
	w io.Writer,
	dbFile string,
	event string,
	limit int,
) error {
	reader, err := datarecording.NewReader(dbFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbFile, err)
	}
	defer reader.Close()

	reader.MapTable(tracing.BeltEventTable, tracing.BeltEvent{})

	params := datarecording.QueryParams{
		OrderBy: "rowid",
		Limit:   limit,
	}
	if event != "" {
		params.Where = "Event = ?"
		params.Args = []any{event}
	}

	rows, err := reader.Query(ctx, tracing.BeltEventTable, params)
	if err != nil {
		return err
	}

	for _, row := range rows {
		evt := row.(*tracing.BeltEvent)

		what := evt.Kind
		if evt.ComponentType != "" {
			what += " " + evt.ComponentType
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n",
			evt.Cycle, evt.Event, what); err != nil {
			return err
		}
	}

	return nil
}
