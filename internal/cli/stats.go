package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// statsOpts holds the command-line flags for the stats command.
type statsOpts struct {
	runFlags
	validate bool // check every neighbor row after building
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats [wordlist]",
		Short: "Show word list and neighbor graph statistics",
		Long: `Show how the word list reduces to candidates and how dense the neighbor
graph is, without running the search.

With --validate every neighbor row is checked: each entry must point to a
later candidate sharing no letter, rows must be sorted and complete.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			c.reportConfig(cfg)
			opts.merge(cfg, cmd.Flags().Changed)
			return c.runStats(cmd.Context(), cmd.OutOrStdout(), resolveSource(args, cfg), &opts)
		},
	}

	addRunFlags(cmd, &opts.runFlags)
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "validate the neighbor graph")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, out io.Writer, source string, opts *statsOpts) error {
	res, err := c.newRunner().Prepare(ctx, opts.options(source))
	if err != nil {
		return err
	}

	st := res.Set.Stats()
	widest := "-"
	if degree, row := res.Graph.MaxDegree(); row >= 0 {
		widest = fmt.Sprintf("%d (%s)", degree, res.Set.Word(row))
	}
	avg := 0.0
	if res.Graph.Len() > 0 {
		avg = float64(res.Stats.Edges) / float64(res.Graph.Len())
	}

	printTable(out, "Word list", [][]string{
		{"Source", source},
		{"Bytes", fmt.Sprint(res.Stats.InputBytes)},
		{"Lines", fmt.Sprint(st.Total)},
		{"Five letters", fmt.Sprint(st.Length)},
		{"Repeated letter", fmt.Sprint(st.Repeated)},
		{"Not letters", fmt.Sprint(st.Invalid)},
		{"Anagrams", fmt.Sprint(st.Duplicates)},
		{"Candidates", fmt.Sprint(st.Unique)},
	})
	printTable(out, "Neighbor graph", [][]string{
		{"Edges", fmt.Sprint(res.Stats.Edges)},
		{"Widest row", widest},
		{"Mean degree", fmt.Sprintf("%.1f", avg)},
		{"Load", res.Stats.LoadTime.String()},
		{"Reduce", res.Stats.ReduceTime.String()},
		{"Build", res.Stats.BuildTime.String()},
	})

	if !opts.validate {
		return nil
	}
	prog := newProgress(c.Logger)
	if err := res.Graph.Validate(res.Set.Masks()); err != nil {
		printError(out, "Neighbor graph is invalid")
		return fmt.Errorf("validate: %w", err)
	}
	prog.done(fmt.Sprintf("Validated %d edges", res.Stats.Edges))
	printSuccess(out, "Neighbor graph is valid")
	return nil
}
