package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-liquid"
)

// validateOutput represents JSON output for validate
type validateOutput struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Reason string `json:"reason,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Line   string `json:"line,omitempty"`
	Column string `json:"column,omitempty"`
}

func newValidateCommand(a *app) *cobra.Command {
	var templatePath, format string

	cmd := &cobra.Command{
		Use:   CmdNameValidate,
		Short: "Compile a template without rendering it",
		Example: `  liquid validate -t template.liquid
  liquid validate -t template.liquid -F json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if templatePath == "" {
				return newExitError(ExitCodeUsageError, ErrMsgMissingTemplate, errors.New(FlagTemplate))
			}
			if format != OutputFormatText && format != OutputFormatJSON {
				return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, errors.New(format))
			}

			source, err := readInput(templatePath, a.stdin)
			if err != nil {
				return newExitError(ExitCodeInputError, ErrMsgReadFileFailed, err)
			}

			_, parseErr := liquid.Parse(string(source), a.options())
			if format == OutputFormatJSON {
				writeValidateJSON(cmd, parseErr)
				if parseErr != nil {
					return newExitError(ExitCodeValidationError, ErrMsgParseFailed, parseErr)
				}
				return nil
			}

			if parseErr != nil {
				return newExitError(ExitCodeValidationError, ErrMsgParseFailed, parseErr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), TextValid)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, FlagTemplate, FlagTemplateShort, "", `template file ("-" for stdin)`)
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")

	return cmd
}

func writeValidateJSON(cmd *cobra.Command, parseErr error) {
	out := validateOutput{Valid: parseErr == nil}
	if parseErr != nil {
		out.Error = parseErr.Error()
		out.Kind = liquid.KindOf(parseErr)
		out.Reason = liquid.ReasonOf(parseErr)
		out.Tag, _ = liquid.MetadataOf(parseErr, liquid.MetaKeyTag)
		out.Line, _ = liquid.MetadataOf(parseErr, liquid.MetaKeyLine)
		out.Column, _ = liquid.MetadataOf(parseErr, liquid.MetaKeyColumn)
	}

	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
}
