package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = VersionUnknown

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func newVersionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionOutput{Version: Version, GoVersion: runtime.Version()}

			switch format {
			case OutputFormatText:
				fmt.Fprintf(cmd.OutOrStdout(), VersionTextTemplate+FmtNewline, out.Version, out.GoVersion)
			case OutputFormatJSON:
				jsonBytes, _ := json.MarshalIndent(out, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
			default:
				return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, errors.New(format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")
	return cmd
}
