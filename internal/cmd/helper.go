package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/build"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/config"
	apperr "github.com/atlasbank/atlasctl/internal/err"
	"github.com/atlasbank/atlasctl/internal/iostreams"
	"github.com/atlasbank/atlasctl/internal/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ConfigurationError and ExecutionError classify command failures; see the err
// package for the taxonomy.
type (
	ConfigurationError = apperr.ConfigurationError
	ExecutionError     = apperr.ExecutionError
)

// Helper is the set of contextual accessors commands use instead of reaching
// into the cobra command or process environment directly.
type Helper interface {
	GetCmd() *cobra.Command
	GetArgs() []string
	GetStreams() *iostreams.IOStreams
	GetConfig() (config.Hook, error)
	GetOutputFormat() (common.OutputFormat, error)
	IsInteractive() bool
	GetLogger() (*slog.Logger, error)
	GetBuildInfo() (*build.Info, error)
	GetContext() context.Context
	GetAtlasClient(cfg config.Hook, logger *slog.Logger) (*atlas.Client, error)
}

type CommandHelper struct {
	// Cmd is a pointer to the command that is being executed
	Cmd *cobra.Command
	// Args are the arguments (not flags) passed to the command
	Args []string
}

func BuildHelper(cmd *cobra.Command, args []string) Helper {
	return &CommandHelper{
		Cmd:  cmd,
		Args: args,
	}
}

func (r *CommandHelper) GetCmd() *cobra.Command {
	return r.Cmd
}

func (r *CommandHelper) GetArgs() []string {
	return r.Args
}

func (r *CommandHelper) GetContext() context.Context {
	return r.Cmd.Context()
}

func (r *CommandHelper) GetStreams() *iostreams.IOStreams {
	return r.Cmd.Context().Value(iostreams.StreamsKey).(*iostreams.IOStreams)
}

func (r *CommandHelper) GetConfig() (config.Hook, error) {
	cfgVal := r.Cmd.Context().Value(config.ConfigKey)
	if cfgVal == nil {
		return nil, PrepareExecutionErrorMsg(r, "no config found in context")
	}
	return cfgVal.(config.Hook), nil
}

func (r *CommandHelper) GetLogger() (*slog.Logger, error) {
	val := r.Cmd.Context().Value(log.LoggerKey)
	if val == nil {
		return nil, &ConfigurationError{
			Err: fmt.Errorf("no logger configured"),
		}
	}
	logger, ok := val.(*slog.Logger)
	if !ok || logger == nil {
		return nil, &ConfigurationError{
			Err: fmt.Errorf("invalid logger configured"),
		}
	}
	return logger, nil
}

func (r *CommandHelper) GetBuildInfo() (*build.Info, error) {
	val := r.Cmd.Context().Value(build.InfoKey)
	if val == nil {
		return nil, &ConfigurationError{
			Err: fmt.Errorf("no build info configured"),
		}
	}

	info, ok := val.(*build.Info)
	if !ok || info == nil {
		return nil, &ConfigurationError{
			Err: fmt.Errorf("invalid build info configured"),
		}
	}

	return info, nil
}

func (r *CommandHelper) GetOutputFormat() (common.OutputFormat, error) {
	c, e := r.GetConfig()
	if e != nil {
		return common.TEXT, e
	}
	s := c.GetString(common.OutputConfigPath)
	rv, e := common.OutputFormatStringToIota(s)
	if e != nil {
		return common.TEXT, &ConfigurationError{Err: e}
	}
	return rv, nil
}

// IsInteractive reports whether the output stream is a terminal, which decides
// between the interactive grid and a static rendering.
func (r *CommandHelper) IsInteractive() bool {
	streams := r.GetStreams()
	if streams == nil {
		return false
	}
	type fdProvider interface {
		Fd() uintptr
	}
	fp, ok := streams.Out.(fdProvider)
	if !ok {
		return false
	}
	fd := fp.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *CommandHelper) GetAtlasClient(cfg config.Hook, logger *slog.Logger) (*atlas.Client, error) {
	if cfg == nil {
		return nil, &ConfigurationError{
			Err: fmt.Errorf("no config provided for Atlas client"),
		}
	}

	baseURL := cfg.GetString(common.BaseURLConfigPath)
	if baseURL == "" {
		baseURL = common.DefaultBaseURL
	}

	return atlas.NewClient(atlas.ClientConfig{
		BaseURL: baseURL,
		Token:   cfg.GetString(common.APITokenConfigPath),
		Logger:  logger,
	})
}

// PrepareExecutionErrorWithHelper mirrors PrepareExecutionError but accepts a Helper.
// It ensures command usage/error output is silenced for runtime failures.
func PrepareExecutionErrorWithHelper(helper Helper, msg string, err error, attrs ...any) *ExecutionError {
	if helper == nil {
		return &ExecutionError{Msg: msg, Err: err, Attrs: attrs}
	}
	return PrepareExecutionError(msg, err, helper.GetCmd(), attrs...)
}

// PrepareExecutionErrorMsg builds an ExecutionError from a message when a backing error
// is not already available.
func PrepareExecutionErrorMsg(helper Helper, msg string, attrs ...any) *ExecutionError {
	if msg == "" {
		return PrepareExecutionErrorWithHelper(helper, msg, errors.New("an unknown error occurred"), attrs...)
	}
	return PrepareExecutionErrorWithHelper(helper, msg, errors.New(msg), attrs...)
}

// This will construct an execution error AND turn off error and usage output for the command
func PrepareExecutionError(msg string, err error, cmd *cobra.Command, attrs ...any) *ExecutionError {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return &ExecutionError{
		Msg:   msg,
		Err:   err,
		Attrs: attrs,
	}
}
