package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xl2json-go/pkg/xl2json"
)

type formOptions struct {
	sheet      string
	fields     []string
	password   string
	charset    string
	outputPath string
	compact    bool
}

func newFormCmd(g *globalOptions) *cobra.Command {
	o := &formOptions{}

	cmd := &cobra.Command{
		Use:   "form [input]",
		Short: "Convert the defined names of a form sheet to a JSON object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := xl2json.GetFormJSONString(args[0], xl2json.FormOptions{
				SheetName:  o.sheet,
				FieldNames: o.fields,
				Password:   o.password,
				Charset:    charsetOrEnv(o.charset),
			})
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			g.logger.Debug("converted form", "input", args[0], "sheet", o.sheet)
			return writeOutput(cmd.OutOrStdout(), o.outputPath, text, o.compact)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.sheet, "sheet", "", "Sheet owning the named cells")
	flags.StringSliceVar(&o.fields, "fields", nil, "Defined names to read (default: every defined name)")
	flags.StringVar(&o.password, "password", "", "Password of an encrypted workbook")
	flags.StringVar(&o.charset, "charset", "", "Charset of legacy input (default windows-1252)")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&o.compact, "compact", false, "Write compact JSON")
	_ = cmd.MarkFlagRequired("sheet")

	return cmd
}
