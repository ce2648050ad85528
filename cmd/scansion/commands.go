package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hathaway2010/poetry-scansion/internal/app"
	"github.com/hathaway2010/poetry-scansion/internal/config"
	"github.com/hathaway2010/poetry-scansion/internal/domain"
	"github.com/hathaway2010/poetry-scansion/pkg/ctxutil"
)

// withApp builds the application for one command and closes it afterwards.
func withApp(cmd *cobra.Command, configPath string, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxutil.WithNewRunID(ctx)

	a, err := app.New(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func scanCmd(configPath *string) *cobra.Command {
	var (
		algorithm string
		file      string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "scan [poem]",
		Short: "Print the scansion of a poem",
		Example: `  scansion scan "The water makes a quietness of sound"
  scansion scan -a compare-adjacent -f harbor.txt
  cat harbor.txt | scansion scan --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			poem, err := readText(cmd, args, file)
			if err != nil {
				return err
			}
			return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
				out := cmd.OutOrStdout()
				if !all {
					result, err := a.Scansion.Scan(ctx, poem, algorithm)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, result)
					return nil
				}

				for i, d := range a.Scansion.Algorithms() {
					result, err := a.Scansion.Scan(ctx, poem, string(d.Algorithm))
					if err != nil {
						return err
					}
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "# %s (%s)\n%s\n", d.Name, d.Algorithm, result)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm to use (see 'scansion algorithms'); defaults to scansion.default_algorithm")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the poem from a file ('-' for stdin)")
	cmd.Flags().BoolVar(&all, "all", false, "print the scansion of every algorithm")
	cmd.MarkFlagsMutuallyExclusive("algorithm", "all")

	return cmd
}

func scoreCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "score [word...]",
		Short: "Print stress ratios for words or for every line of a poem",
		Long: `With words as arguments, prints each word's per-syllable stress ratios and
the number of corpus observations behind them. Without arguments, scores the
poem read from --file or stdin; syllables are separated by spaces and words
by '|'. Unknown syllables print as '?'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && file != "" {
				return fmt.Errorf("give either words or --file, not both")
			}
			if len(args) > 0 {
				return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					for _, word := range args {
						scores, confidence, err := a.Scansion.ScoreWordWithConfidence(ctx, word)
						if err != nil {
							return err
						}
						fmt.Fprintf(w, "%s\t%s\t%d\n", word, formatScores(scores), confidence)
					}
					return w.Flush()
				})
			}

			poem, err := readText(cmd, nil, file)
			if err != nil {
				return err
			}
			return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
				lines, err := a.Scansion.ScorePoem(ctx, poem)
				if err != nil {
					return err
				}
				for _, line := range lines {
					fmt.Fprintln(cmd.OutOrStdout(), formatScores(line))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the poem from a file ('-' for stdin)")

	return cmd
}

func syllablesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "syllables word...",
		Short: "Estimate syllable counts from spelling",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
				a.Log.DebugContext(ctx, "estimating syllables",
					slog.String("rules", a.Scansion.SyllableRules()),
					slog.Int("words", len(args)),
				)
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, word := range args {
					fmt.Fprintf(w, "%s\t%d\n", word, a.Scansion.EstimateSyllables(word))
				}
				return w.Flush()
			})
		},
	}
}

func recordCmd(configPath *string) *cobra.Command {
	var poemFile, scansionFile string

	cmd := &cobra.Command{
		Use:   "record [poem scansion]",
		Short: "Add a confirmed scansion to the corpus",
		Long: `Adds one observation per word of the poem: the word's pattern in the
scansion gains one popularity point, or is created with popularity 1.

The poem and the scansion must have the same number of whitespace-separated
words and every pattern must consist of '/' and 'u'; otherwise nothing is
recorded.`,
		Example: `  scansion record "the water moon" "u /u /"
  scansion record --poem-file harbor.txt --scansion-file harbor.scan`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var poem, scan string
			switch {
			case len(args) == 2 && poemFile == "" && scansionFile == "":
				poem, scan = args[0], args[1]
			case len(args) == 0 && poemFile != "" && scansionFile != "":
				var err error
				if poem, err = readText(cmd, nil, poemFile); err != nil {
					return err
				}
				if scan, err = readText(cmd, nil, scansionFile); err != nil {
					return err
				}
			default:
				return fmt.Errorf("give a poem and a scansion either as two arguments or with --poem-file and --scansion-file")
			}

			return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
				if err := a.Scansion.RecordScansion(ctx, poem, scan); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded %d words\n", len(domain.SplitWords(poem)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&poemFile, "poem-file", "", "read the poem from a file ('-' for stdin)")
	cmd.Flags().StringVar(&scansionFile, "scansion-file", "", "read the scansion from a file")

	return cmd
}

func gradeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "grade reference submitted",
		Short:   "Compare a submitted scansion with a reference one",
		Example: `  scansion grade "u/ u /" "u/ / /"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configPath, func(ctx context.Context, a *app.App) error {
				ag, err := a.Scansion.GradeScansion(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "words: %d\ndisagreements: %d\nratio: %.4f\npoints: %+d\n",
					ag.Words, ag.Disagreements, ag.Ratio, ag.Points)
				if len(ag.Mismatches) > 0 {
					idx := make([]string, len(ag.Mismatches))
					for i, m := range ag.Mismatches {
						idx[i] = fmt.Sprint(m + 1)
					}
					fmt.Fprintf(out, "mismatched words: %s\n", strings.Join(idx, ", "))
				}
				return nil
			})
		},
	}
}

func algorithmsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the scansion algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configPath, func(_ context.Context, a *app.App) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, d := range a.Scansion.Algorithms() {
					marker := ""
					if d.Preferred {
						marker = "*"
					}
					fmt.Fprintf(w, "%s%s\t%s\t%s\n", d.Algorithm, marker, d.Name, d.About)
				}
				return w.Flush()
			})
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending corpus migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			n, err := app.Migrate(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migrations (%s)\n", n, cfg.Corpus.Driver)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, app.BuildVersion())
		},
	}
}

// formatScores renders a score sequence with words separated by " | ".
func formatScores(scores []domain.Score) string {
	var b strings.Builder
	for i, s := range scores {
		if s.IsSpace() {
			if i < len(scores)-1 {
				b.WriteString(" |")
			}
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
