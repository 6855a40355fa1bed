package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-liquid"
)

// Commands cobra adds on its own
const (
	cmdNameHelp       = "help"
	cmdNameCompletion = "completion"
)

// app holds the state shared by all commands of one invocation
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        *liquid.Config
	logger     *zap.Logger
}

// newRootCommand builds the command tree. Configuration is loaded once,
// before any subcommand runs.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   CLIName,
		Short: CLIShort,
		Long:  CLILong,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case CmdNameVersion, cmdNameHelp, cmdNameCompletion, cobra.ShellCompRequestCmd:
				return nil
			}
			return a.configure(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, FlagConfig, "", "YAML config file")
	flags.Int(FlagMaxDepth, liquid.DefaultMaxDepth, "maximum block nesting depth")
	flags.String(FlagErrorMode, liquid.DefaultErrorMode.String(), "error mode (strict|warn|lax)")
	flags.String(FlagLogLevel, liquid.DefaultLogLevel, "log level (debug|info|warn|error)")

	_ = root.RegisterFlagCompletionFunc(FlagErrorMode, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{liquid.ErrorModeNameStrict, liquid.ErrorModeNameWarn, liquid.ErrorModeNameLax}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newValidateCommand(a))
	root.AddCommand(newTagsCommand(a))
	root.AddCommand(newVersionCommand())

	return root
}

// configure loads layered configuration and builds the logger
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Root().PersistentFlags())
	if err != nil {
		return newExitError(ExitCodeUsageError, ErrMsgConfigFailed, err)
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Level(), a.stderr)

	a.logger.Debug(LogMsgConfigLoaded,
		zap.String(LogFieldConfigFile, a.configPath),
		zap.Int(LogFieldMaxDepth, cfg.MaxDepth),
		zap.String(LogFieldErrorMode, cfg.ErrorMode),
		zap.String(LogFieldLogLevel, cfg.LogLevel))
	return nil
}

// options returns a fresh extension registry configured from the loaded settings
func (a *app) options() *liquid.Options {
	return liquid.NewOptions(
		liquid.WithConfig(a.cfg),
		liquid.WithLogger(a.logger),
	)
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newLogger builds a JSON production logger writing to w at the given level
func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
