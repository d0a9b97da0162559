// Package main provides the CLI entry point for xl2json.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

// Environment variables consulted for flag defaults.
const (
	envCharset = "XL2JSON_CHARSET"
	envJobs    = "XL2JSON_JOBS"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	verbose bool
	envFile string
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "xl2json",
		Short: "Convert Excel workbooks to JSON",
		Long: `xl2json converts spreadsheet workbooks (xlsx, xlsm, xls, csv) into JSON.
Tabular sheets become arrays of objects, form sheets become a single object
built from defined names, and a sample row can be turned into a Go model.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if g.envFile != "" {
				if err := godotenv.Load(g.envFile); err != nil {
					return fmt.Errorf("loading env file: %w", err)
				}
				g.logger.Debug("loaded env file", "path", g.envFile)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "Load "+envCharset+" and "+envJobs+" defaults from a .env file")

	rootCmd.AddCommand(newTableCmd(g), newFormCmd(g), newModelCmd(g))
	return rootCmd
}

// charsetOrEnv returns flag unless it is empty, falling back to the environment.
func charsetOrEnv(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(envCharset)
}

// jobsOrEnv returns flag unless it is zero, falling back to the environment
// and then to 1.
func jobsOrEnv(flag int) int {
	if flag > 0 {
		return flag
	}
	if n, err := strconv.Atoi(os.Getenv(envJobs)); err == nil && n > 0 {
		return n
	}
	return 1
}

// writeOutput writes text to path, or to w when path is empty. compact
// strips insignificant whitespace.
func writeOutput(w io.Writer, path, text string, compact bool) error {
	data := []byte(text)
	if compact {
		data = pretty.Ugly(data)
	}
	if path == "" {
		if _, err := w.Write(data); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
