package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itsatony/go-liquid"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	dataJSON     string
	dataFilePath string
	outputPath   string
	watch        bool
}

func newRenderCommand(a *app) *cobra.Command {
	rc := &renderConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameRender,
		Short: "Render a template with data",
		Example: `  liquid render -t template.liquid -d '{"name": "Alice"}'
  liquid render -t template.liquid -f data.yaml -o output.txt
  cat template.liquid | liquid render -t - -f data.json
  liquid render -t template.liquid -f data.yaml -o output.txt --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rc.templatePath == "" {
				return newExitError(ExitCodeUsageError, ErrMsgMissingTemplate, errors.New(FlagTemplate))
			}
			if rc.watch && rc.templatePath == InputSourceStdin {
				return newExitError(ExitCodeUsageError, ErrMsgWatchStdin, errors.New(FlagWatch))
			}

			data, err := loadData(rc.dataJSON, rc.dataFilePath)
			if err != nil {
				return newExitError(ExitCodeInputError, ErrMsgInvalidData, err)
			}

			if rc.watch {
				return a.watchTemplate(cmd.Context(), rc, data)
			}
			return a.renderOnce(rc, data)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&rc.templatePath, FlagTemplate, FlagTemplateShort, "", `template file ("-" for stdin)`)
	flags.StringVarP(&rc.dataJSON, FlagData, FlagDataShort, "", "JSON data string")
	flags.StringVarP(&rc.dataFilePath, FlagDataFile, FlagDataFileShort, "", "JSON or YAML data file")
	flags.StringVarP(&rc.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, `output file ("-" for stdout)`)
	flags.BoolVarP(&rc.watch, FlagWatch, FlagWatchShort, false, "re-render whenever the template file changes")

	return cmd
}

// renderOnce reads, compiles and renders the template, then writes the result
func (a *app) renderOnce(rc *renderConfig, data map[string]any) error {
	source, err := readInput(rc.templatePath, a.stdin)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	tmpl, err := liquid.Parse(string(source), a.options())
	if err != nil {
		return newExitError(ExitCodeValidationError, ErrMsgParseFailed, err)
	}

	ctx, err := liquid.NewContextFromMap(data)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgInvalidData, err)
	}

	result, err := tmpl.Render(ctx)
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgRenderFailed, err)
	}

	if err := writeOutput(rc.outputPath, []byte(result), a.stdout); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// watchTemplate renders once, then again after every write to the template
// file, until ctx is done. Failed renders are reported and watching continues.
func (a *app) watchTemplate(ctx context.Context, rc *renderConfig, data map[string]any) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgWatchFailed, err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so editors that replace the file are still seen
	target := filepath.Clean(rc.templatePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return newExitError(ExitCodeError, ErrMsgWatchFailed, err)
	}
	a.logger.Info(LogMsgWatchStarted, zap.String(LogFieldPath, target))

	a.reportRender(rc, data)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info(LogMsgWatchStopped, zap.String(LogFieldPath, target))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.logger.Debug(LogMsgWatchRender, zap.String(LogFieldPath, target))
			a.reportRender(rc, data)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn(LogMsgWatchError, zap.Error(err))
		}
	}
}

// reportRender renders once and prints any failure instead of returning it
func (a *app) reportRender(rc *renderConfig, data map[string]any) {
	if err := a.renderOnce(rc, data); err != nil {
		fmt.Fprintln(a.stderr, err.Error())
	}
}
