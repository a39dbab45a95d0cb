// Package main provides the kiwirail CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kiwirail/core"
	"github.com/katalvlaran/kiwirail/parse"
	"github.com/katalvlaran/kiwirail/shortest"
	"github.com/katalvlaran/kiwirail/trips"
)

const (
	// envNetwork names the environment variable consulted when the
	// --network flag is absent. A .env file in the working directory
	// is loaded first, so the variable may live there.
	envNetwork = "KIWIRAIL_NETWORK"

	// defaultNetworkFile is the fallback network path.
	defaultNetworkFile = "network.txt"

	// noSuchRoute is the answer printed when a queried route does not
	// exist. Absence is an answer, so it goes to stdout, not stderr.
	noSuchRoute = "NO SUCH ROUTE"
)

// Version is the current kiwirail CLI version.
var Version = "1.0.0"

var (
	networkPath string
	verbose     bool

	tripsMaxStops      int
	tripsExactStops    int
	tripsDistanceUnder int64
	tripsCountOnly     bool
)

// logger writes diagnostics to stderr; answers go to stdout alone.
// initRuntime swaps the level to Debug under --verbose.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var rootCmd = &cobra.Command{
	Use:   "kiwirail",
	Short: "Kiwirail - routing queries over the Kiwiland railroad",
	Long: `Kiwirail answers routing questions over a directed railroad network:
exact path distances, bounded trip enumeration and shortest routes.

The network file is resolved in order: --network flag, the ` + envNetwork + `
environment variable (a .env file is honored), then ./` + defaultNetworkFile + `.
Plain text files hold comma-separated edge tokens ("AB5, BC4"); .yaml/.yml
files hold a routes list.`,
	Version:          Version,
	PersistentPreRun: initRuntime,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the ten classic Kiwiland answers",
	Long: `Run the ten classic queries against the network and print one
"Output #N: answer" line per query: five exact path distances, three
bounded trip counts and two shortest routes.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var distanceCmd = &cobra.Command{
	Use:   "distance A-B-C",
	Short: "Measure the distance of an exact path",
	Long: `Trace a dash-separated town path hop by hop and print its total
distance, or NO SUCH ROUTE when any hop is missing.

Examples:
  kiwirail distance A-B-C
  kiwirail distance A-E-B-C-D`,
	Args: cobra.ExactArgs(1),
	RunE: runDistance,
}

var tripsCmd = &cobra.Command{
	Use:   "trips ORIGIN DESTINATION",
	Short: "Enumerate routes under a stop or distance bound",
	Long: `List every route between two towns satisfying exactly one bound,
revisits included. Routes print in deterministic discovery order,
followed by a total; --count prints the total alone.

Examples:
  kiwirail trips C C --max-stops 3
  kiwirail trips A C --exact-stops 4
  kiwirail trips C C --distance-under 30 --count`,
	Args: cobra.ExactArgs(2),
	RunE: runTrips,
}

var shortestCmd = &cobra.Command{
	Use:   "shortest ORIGIN DESTINATION",
	Short: "Find the shortest route between two towns",
	Long: `Search nearest tiers for the minimal route and print it with its
distance. Asking for a town's route to itself finds the shortest
round trip.

Examples:
  kiwirail shortest A C
  kiwirail shortest B B`,
	Args: cobra.ExactArgs(2),
	RunE: runShortest,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkPath, "network", "n", "",
		"path to the network file (overrides "+envNetwork+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging to stderr")

	tripsCmd.Flags().IntVar(&tripsMaxStops, "max-stops", 0,
		"keep routes with at most this many stops")
	tripsCmd.Flags().IntVar(&tripsExactStops, "exact-stops", 0,
		"keep routes with exactly this many stops")
	tripsCmd.Flags().Int64Var(&tripsDistanceUnder, "distance-under", 0,
		"keep routes with total distance strictly under this value")
	tripsCmd.Flags().BoolVar(&tripsCountOnly, "count", false,
		"print only the number of matching routes")
	tripsCmd.MarkFlagsMutuallyExclusive("max-stops", "exact-stops", "distance-under")
	tripsCmd.MarkFlagsOneRequired("max-stops", "exact-stops", "distance-under")

	rootCmd.AddCommand(reportCmd, distanceCmd, tripsCmd, shortestCmd)
}

// initRuntime loads an optional .env file and tunes the logger.
// Missing .env files are the normal case, not a failure.
func initRuntime(_ *cobra.Command, _ []string) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}
}

// resolveNetworkPath picks the network file: flag, then environment,
// then the default.
func resolveNetworkPath() string {
	if networkPath != "" {
		return networkPath
	}

	return getEnv(envNetwork, defaultNetworkFile)
}

// getEnv returns the environment value for key, or fallback when the
// variable is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// loadGraph reads the resolved network file and freezes it into a
// graph.
func loadGraph() (*core.Graph, error) {
	path := resolveNetworkPath()

	edges, err := parse.Network(path)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(edges...)
	if err != nil {
		return nil, fmt.Errorf("network %s: %w", path, err)
	}

	logger.Debug("network loaded",
		"path", path, "towns", g.TownCount(), "tracks", g.EdgeCount())

	return g, nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), g)
}

func runDistance(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	towns, err := parse.Path(args[0])
	if err != nil {
		return err
	}

	r, err := g.Trace(towns...)
	if err != nil {
		// A missing hop is an answer; anything else is a real error.
		if errors.Is(err, core.ErrNoSuchRoute) {
			fmt.Fprintln(cmd.OutOrStdout(), noSuchRoute)
			return nil
		}

		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), r.Distance())

	return nil
}

func runTrips(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	c, err := tripsConstraint(cmd)
	if err != nil {
		return err
	}
	logger.Debug("enumerating trips",
		"origin", args[0], "destination", args[1], "constraint", c.String())

	routes, err := trips.Trips(g, args[0], args[1], c)
	if err != nil {
		return err
	}

	if tripsCountOnly {
		fmt.Fprintln(cmd.OutOrStdout(), len(routes))
		return nil
	}
	for _, r := range routes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", r, r.Distance())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", len(routes))

	return nil
}

// tripsConstraint maps the one set bound flag onto a Constraint.
// --distance-under is exclusive, so it hands the library an inclusive
// bound one below the flag value.
func tripsConstraint(cmd *cobra.Command) (trips.Constraint, error) {
	switch {
	case cmd.Flags().Changed("max-stops"):
		return trips.MaxStops(tripsMaxStops), nil
	case cmd.Flags().Changed("exact-stops"):
		return trips.ExactStops(tripsExactStops), nil
	default:
		if tripsDistanceUnder < 2 {
			return trips.Constraint{}, fmt.Errorf(
				"--distance-under %d keeps nothing: every route is at least 1 long", tripsDistanceUnder)
		}

		return trips.MaxDistance(tripsDistanceUnder - 1), nil
	}
}

func runShortest(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	r, found, err := shortest.ShortestRoute(g, args[0], args[1])
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), noSuchRoute)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", r, r.Distance())

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
