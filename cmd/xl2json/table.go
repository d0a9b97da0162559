package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/xl2json-go/pkg/xl2json"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/mapper"
)

type tableOptions struct {
	skipRows       int
	replaceFrom    []string
	replaceTo      []string
	defaultReplace bool
	headers        []string
	sample         bool
	sheet          string
	password       string
	charset        string
	outputPath     string
	outputDir      string
	compact        bool
	jobs           int
}

func newTableCmd(g *globalOptions) *cobra.Command {
	o := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table [input...]",
		Short: "Convert tabular sheets to a JSON array",
		Long: `Convert the rows of every sheet into a JSON array of objects keyed by
the header row. Several inputs are converted concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, g, o, args)
		},
	}

	flags := cmd.Flags()
	o.addHeaderFlags(flags)
	flags.BoolVar(&o.sample, "sample", false, "Emit only the first data row")
	flags.StringVar(&o.sheet, "sheet", "", "Convert only this sheet")
	flags.StringVar(&o.password, "password", "", "Password of an encrypted workbook")
	flags.StringVar(&o.charset, "charset", "", "Charset of legacy and csv input (default windows-1252)")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&o.outputDir, "output-dir", "", "Directory for one <input>.json file per input")
	flags.BoolVar(&o.compact, "compact", false, "Write compact JSON")
	flags.IntVarP(&o.jobs, "jobs", "j", 0, "Inputs converted concurrently (default 1)")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	cmd.MarkFlagsMutuallyExclusive("default-replace", "replace-from")

	return cmd
}

// addHeaderFlags registers the flags shaping the header row.
func (o *tableOptions) addHeaderFlags(flags *pflag.FlagSet) {
	flags.IntVar(&o.skipRows, "skip-rows", 0, "Rows to discard before the header row")
	flags.StringSliceVar(&o.replaceFrom, "replace-from", nil, "Substrings to replace in header names")
	flags.StringSliceVar(&o.replaceTo, "replace-to", nil, "Replacements for --replace-from, in order")
	flags.BoolVar(&o.defaultReplace, "default-replace", false, "Strip accents and spell out R$ and % in header names")
	flags.StringSliceVar(&o.headers, "headers", nil, "Header names to use instead of the header row")
}

func (o *tableOptions) convertOptions() xl2json.TableOptions {
	opts := xl2json.TableOptions{
		SkipRows:      o.skipRows,
		ReplaceFrom:   o.replaceFrom,
		ReplaceTo:     o.replaceTo,
		HeaderColumns: o.headers,
		OnlySampleRow: o.sample,
		Sheet:         o.sheet,
		Password:      o.password,
		Charset:       charsetOrEnv(o.charset),
	}
	if o.defaultReplace {
		table := mapper.DefaultReplacementTable()
		opts.ReplaceFrom, opts.ReplaceTo = table.From, table.To
	}
	return opts
}

func runTable(cmd *cobra.Command, g *globalOptions, o *tableOptions, inputs []string) error {
	if len(inputs) > 1 && o.outputPath != "" {
		return fmt.Errorf("--output takes a single input, use --output-dir for %d inputs", len(inputs))
	}
	if o.outputDir != "" {
		if err := os.MkdirAll(o.outputDir, 0755); err != nil {
			return err
		}
	}

	opts := o.convertOptions()
	results := make([]string, len(inputs))

	var eg errgroup.Group
	eg.SetLimit(jobsOrEnv(o.jobs))
	for i, input := range inputs {
		eg.Go(func() error {
			start := time.Now()
			text, err := xl2json.GetJSONString(input, opts)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			g.logger.Debug("converted", "input", input, "bytes", len(text), "elapsed", time.Since(start))

			if o.outputDir != "" {
				return writeOutput(nil, outputFileName(o.outputDir, input), text, o.compact)
			}
			results[i] = text
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if o.outputDir != "" {
		return nil
	}
	for _, text := range results {
		if err := writeOutput(cmd.OutOrStdout(), o.outputPath, text, o.compact); err != nil {
			return err
		}
	}
	return nil
}

// outputFileName maps an input path to <dir>/<base without extension>.json.
func outputFileName(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
}
