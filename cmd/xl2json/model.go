package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xl2json-go/pkg/xl2json"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/schema"
)

type modelOptions struct {
	table      tableOptions
	pkg        string
	outputPath string
}

func newModelCmd(g *globalOptions) *cobra.Command {
	o := &modelOptions{}

	cmd := &cobra.Command{
		Use:   "model [input]",
		Short: "Generate a Go model from the first data row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := xl2json.GetClassModel(args[0], o.table.convertOptions(), o.pkg)
			if err != nil {
				return fmt.Errorf("model generation failed: %w", err)
			}
			g.logger.Debug("generated model", "input", args[0], "type", schema.ModelName(args[0]))

			if o.outputPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), src)
				return err
			}
			return os.WriteFile(o.outputPath, []byte(src), 0644)
		},
	}

	flags := cmd.Flags()
	o.table.addHeaderFlags(flags)
	flags.StringVar(&o.table.sheet, "sheet", "", "Sample only this sheet")
	flags.StringVar(&o.table.charset, "charset", "", "Charset of legacy and csv input (default windows-1252)")
	flags.StringVar(&o.pkg, "package", schema.DefaultPackage, "Package name of the generated file")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("default-replace", "replace-from")

	return cmd
}
