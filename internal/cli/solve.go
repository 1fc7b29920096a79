package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/pipeline"
	"github.com/matzehuels/fivewords/pkg/report"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	runFlags
	format      string // report format: text, json, dot, svg
	output      string // output file; stdout if empty
	interactive bool   // browse solutions in a TUI instead of printing them
}

// addRunFlags registers the flags shared by solve and stats.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/fivewords/config.toml)")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "number of workers (0 = all processors)")
	cmd.Flags().Int64Var(&f.maxInputBytes, "max-input-bytes", 0, "maximum word list size in bytes (default 8 MiB)")
	cmd.Flags().IntVar(&f.maxCandidates, "max-candidates", 0, "maximum unique candidate words (default 8192)")
	cmd.Flags().IntVar(&f.maxNeighbors, "max-neighbors", 0, "maximum neighbors of one word (default 4096)")
	cmd.Flags().IntVar(&f.maxSolutions, "max-solutions", 0, "maximum solutions per worker (default 1024)")
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "solve [wordlist]",
		Short: "Find all five-word sets with 25 distinct letters",
		Long: `Find all five-word sets with 25 distinct letters.

The word list is read from the given path, from the config file, or from
words_alpha.txt in the working directory. Gzip and zstd compressed lists
are detected automatically.`,
		Example: `  fivewords solve words_alpha.txt
  fivewords solve -j 8 -f json -o solutions.json
  fivewords solve -f svg -o solutions.svg
  fivewords solve -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			c.reportConfig(cfg)
			opts.merge(cfg, cmd.Flags().Changed)
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.format = cfg.Format
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), resolveSource(args, cfg), &opts)
		},
	}

	addRunFlags(cmd, &opts.runFlags)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the solutions interactively")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.ValidFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// reportConfig logs where the config came from and warns about unknown keys.
func (c *CLI) reportConfig(cfg *fileConfig) {
	if cfg.path == "" {
		return
	}
	c.Logger.Debug("loaded config", "path", cfg.path)
	for _, k := range cfg.unknown {
		c.Logger.Warn("unknown config key", "key", k, "path", cfg.path)
	}
}

func (c *CLI) runSolve(ctx context.Context, out io.Writer, source string, opts *solveOpts) error {
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	if opts.interactive && !isTerminal(os.Stdout) {
		return errors.New(errors.ErrCodeInvalidConfig, "interactive mode needs a terminal")
	}

	popts := opts.options(source)
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	// The header and timing lines belong to the plain text report only, so
	// that JSON, DOT and SVG on stdout stay machine-readable.
	plain := opts.format == pipeline.FormatText && opts.output == "" && !opts.interactive
	if plain {
		fmt.Fprintf(out, "Using %d / %d workers\n", popts.Workers, runtime.NumCPU())
	} else {
		printInfo(os.Stderr, "Using %d / %d workers", popts.Workers, runtime.NumCPU())
	}

	spinner := startSpinner(ctx, os.Stderr, fmt.Sprintf("Searching %s...", source))
	res, err := c.newRunner().Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.interactive {
		return browse(ctx, res.Report)
	}

	data, err := pipeline.Render(ctx, res.Report, opts.format)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess(os.Stderr, "Found %s solutions in %s",
			StyleHighlight.Render(fmt.Sprint(res.Report.Total)), report.FormatElapsed(res.Stats.Elapsed))
		printFile(os.Stderr, opts.output)
		printDetail(os.Stderr, "run %s", res.RunID)
		return nil
	}

	if _, err := out.Write(data); err != nil {
		return err
	}
	if plain {
		fmt.Fprintln(out, report.FormatElapsed(res.Stats.Elapsed))
	}
	return nil
}

// browse runs the interactive solution browser until the user quits.
func browse(ctx context.Context, rep *report.Report) error {
	if rep.Total == 0 {
		printWarning(os.Stderr, "No solutions to browse")
		return nil
	}
	p := tea.NewProgram(newSolutionListModel(rep), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
