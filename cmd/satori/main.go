package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ericr/satori/config"
	"github.com/ericr/satori/encoding"
	"github.com/ericr/satori/solver"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	seed    int64
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "satori FILE",
		Short:        "Decide the satisfiability of a DIMACS CNF formula",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(args[0])
		},
	}

	cmd.Flags().Int64Var(&o.seed, "seed", defaultSeed(), "branching RNG seed")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging and statistics")

	return cmd
}

// defaultSeed reads the SATORI_SEED environment variable, falling back to
// the built-in default.
func defaultSeed() int64 {
	if env := os.Getenv("SATORI_SEED"); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}
	return config.DefaultSeed
}

func (o *options) run(path string) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	clauses, err := readCNF(path)
	if err != nil {
		return err
	}
	conf := config.New()
	conf.Logger = logger
	conf.Seed = o.seed
	conf.Verbose = o.verbose

	sat := solver.New(conf)
	for _, clause := range clauses {
		sat.AddClause(clause)
	}
	logger.Debugf("starting satori %s with seed %d", solver.Version(), o.seed)

	tStart := time.Now()
	found := sat.Solve()

	if o.verbose {
		displayStats(sat, time.Since(tStart))
	}
	if !found {
		fmt.Fprint(os.Stdout, "UNSAT\n")

		return nil
	}
	if !sat.Verify() {
		return errors.New("model does not satisfy the formula")
	}
	fmt.Fprint(os.Stdout, "SAT\n")
	displayModel(sat)

	return nil
}

func displayModel(sat *solver.Solver) {
	for _, p := range sat.Answer() {
		v := p
		if v < 0 {
			v = -v
		}
		fmt.Fprintf(os.Stdout, "%d = %t\n", v, p > 0)
	}
}

func displayStats(s *solver.Solver, t time.Duration) {
	fmt.Fprint(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Time Taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "Variables:     %d\n", s.NVars())
	fmt.Fprintf(os.Stderr, "Constraints:   %d\n", s.NConstrs())
	fmt.Fprintf(os.Stderr, "Learnts:       %d\n", s.NLearnts())
	fmt.Fprintf(os.Stderr, "Conflicts:     %d\n", s.NConflicts())
	fmt.Fprintf(os.Stderr, "Propagations:  %d\n", s.NPropagations())
	fmt.Fprintf(os.Stderr, "Decisions:     %d\n", s.NDecisions())
	fmt.Fprint(os.Stderr, "\n")
}

func readCNF(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	clauses, err := encoding.ParseDimacs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return clauses, nil
}
