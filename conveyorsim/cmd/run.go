package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/sarchlab/conveyorsim/config"
	"github.com/sarchlab/conveyorsim/conveyor"
	"github.com/sarchlab/conveyorsim/simulation"
	"github.com/spf13/cobra"
	"github.com/syifan/goseth"
)

// autoRecordName is the value of --record when given without a path.
const autoRecordName = "auto"

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print a summary.",
		Long: `Run simulates the belt for a number of time units. Parameters ` +
			`come from flags, then from CONVEYOR_* environment variables, ` +
			`then from a .env file. Missing or invalid values fall back to ` +
			`defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := runCmd.Flags()
	flags.String("build-duration", "",
		"Number of time units that a worker builds for (default 4)")
	flags.String("num-slots", "", "Number of slots on the belt (default 3)")
	flags.String("num-workers-per-slot", "",
		"Number of workers at each slot (default 2)")
	flags.String("simulation-length", "",
		"Number of time units to simulate for (default 100)")
	flags.String("seed", "",
		"Seed of the item generator, 0 or empty seeds from the clock")
	flags.String("env-file", "",
		"File to read CONVEYOR_* values from (default .env)")
	flags.String("record", "",
		"Record every entry and exit into a SQLite database, "+
			"--record=PATH picks the file name")
	flags.Lookup("record").NoOptDefVal = autoRecordName
	flags.Bool("verbose", false, "Log every tick to stderr")
	flags.Bool("dump-state", false, "Print the final belt as JSON")

	return runCmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func rawFromFlags(cmd *cobra.Command) config.Raw {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	return config.Raw{
		BuildDuration:     get("build-duration"),
		NumSlots:          get("num-slots"),
		NumWorkersPerSlot: get("num-workers-per-slot"),
		SimulationLength:  get("simulation-length"),
		Seed:              get("seed"),
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var envFiles []string
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		envFiles = append(envFiles, envFile)
	}

	envRaw, err := config.LoadEnv(envFiles...)
	if err != nil {
		return config.Config{}, fmt.Errorf("reading environment: %w", err)
	}

	return config.Parse(rawFromFlags(cmd).Or(envRaw)), nil
}

func runSimulation(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	builder := simulation.MakeBuilder().WithConfig(cfg)

	if record, _ := cmd.Flags().GetString("record"); record != "" {
		if record == autoRecordName {
			record = ""
		}
		builder = builder.WithRecording(record)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		builder = builder.WithEventLogger(log.New(stderr, "", 0))
	}

	s := builder.Build()

	runErr := s.Run()
	if err := s.Terminate(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil {
		return runErr
	}

	if err := s.Stats().PrintSummary(stdout, cfg); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Run %s used seed %d\n", s.ID(), s.Seed())

	if dump, _ := cmd.Flags().GetBool("dump-state"); dump {
		return dumpBelt(stdout, s.Belt())
	}

	return nil
}

func dumpBelt(w io.Writer, belt *conveyor.Belt) error {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(belt)
	// slots > slot > workers > worker > items > item > item fields
	serializer.SetMaxDepth(8)

	if err := serializer.SetEntryPoint([]string{"slots"}); err != nil {
		return err
	}

	if err := serializer.Serialize(w); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w)

	return err
}
