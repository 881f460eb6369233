package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlasbank/atlasctl/internal/build"
	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/cmd/root/list"
	"github.com/atlasbank/atlasctl/internal/cmd/root/version"
	"github.com/atlasbank/atlasctl/internal/config"
	"github.com/atlasbank/atlasctl/internal/iostreams"
	"github.com/atlasbank/atlasctl/internal/log"
	"github.com/atlasbank/atlasctl/internal/meta"
	"github.com/atlasbank/atlasctl/internal/profile"
	"github.com/atlasbank/atlasctl/internal/theme"
	"github.com/atlasbank/atlasctl/internal/util"
	"github.com/atlasbank/atlasctl/internal/util/i18n"
	"github.com/atlasbank/atlasctl/internal/util/normalizers"
)

var (
	rootLong = normalizers.LongDesc(i18n.T("root.rootLong", fmt.Sprintf(`
  %s is the terminal administration console for the %s back office.

  List screens for users, transactions, currencies, and ATMs run on an
  interactive data grid with searching, filtering, sorting, and export.`,
		meta.CLIName, meta.ProductName)))

	rootShort = i18n.T("root.rootShort",
		fmt.Sprintf("%s administers %s", meta.CLIName, meta.ProductName))

	rootCmd *cobra.Command

	// Stores the global runtime value for the configuration file path.
	configFilePath = config.ExpandDefaultConfigFilePath()
	currProfile    = profile.DefaultProfile

	currConfig   config.Hook
	streams      *iostreams.IOStreams
	pMgr         profile.Manager
	logger       *slog.Logger
	logFile      *os.File
	outputFormat = cmd.NewEnum([]string{"json", "yaml", "text"}, common.DefaultOutputFormat)
	logLevel     = cmd.NewEnum([]string{"trace", "debug", "info", "warn", "error"}, common.DefaultLogLevel)

	buildInfo *build.Info
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   meta.CLIName,
		Short: rootShort,
		Long:  rootLong,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			if err := initTheme(); err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), config.ConfigKey, currConfig)
			ctx = context.WithValue(ctx, iostreams.StreamsKey, streams)
			ctx = context.WithValue(ctx, profile.ProfileManagerKey, pMgr)
			ctx = context.WithValue(ctx, build.InfoKey, buildInfo)
			ctx = context.WithValue(ctx, log.LoggerKey, logger)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
	}

	// parses all flags not just the target command
	rootCmd.TraverseChildren = true

	rootCmd.PersistentFlags().StringVar(&configFilePath, common.ConfigFilePathFlagName,
		config.ExpandDefaultConfigFilePath(),
		i18n.T("root."+common.ConfigFilePathFlagName, "Path to the configuration file to load."))

	rootCmd.PersistentFlags().StringVarP(&currProfile, common.ProfileFlagName, common.ProfileFlagShort,
		profile.DefaultProfile,
		"Specify the profile to use for this command.")

	rootCmd.PersistentFlags().VarP(outputFormat, common.OutputFlagName, common.OutputFlagShort,
		fmt.Sprintf(`Configures the output format.
- Config path: [ %s ]
- Allowed    : [ %s ]`,
			common.OutputConfigPath, strings.Join(outputFormat.Allowed, "|")))

	rootCmd.PersistentFlags().Var(logLevel, common.LogLevelFlagName,
		fmt.Sprintf(`Configures the logging level.
- Config path: [ %s ]
- Allowed    : [ %s ]`,
			common.LogLevelConfigPath, strings.Join(logLevel.Allowed, "|")))

	return rootCmd
}

func addCommands() {
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(list.NewListCmd())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd = newRootCmd()
	addCommands()

	// The profile selects the config sub-view, so it cannot be read through
	// viper itself. A well known env var fills in when the flag is absent,
	// giving ENV_VAR < CLI_FLAG priority.
	profileEnvVar, found := os.LookupEnv(fmt.Sprintf("%s_PROFILE", strings.ToUpper(meta.CLIName)))
	if found {
		currProfile = profileEnvVar
	}
}

func initConfig() {
	cfg, err := config.GetConfig(configFilePath, currProfile, config.ExpandDefaultConfigFilePath())
	util.CheckError(err)
	currConfig = cfg

	pMgr = profile.NewManager(cfg.Viper)

	f := rootCmd.Flags().Lookup(common.OutputFlagName)
	util.CheckError(cfg.BindFlag(common.OutputConfigPath, f))

	f = rootCmd.Flags().Lookup(common.LogLevelFlagName)
	util.CheckError(cfg.BindFlag(common.LogLevelConfigPath, f))
}

// initLogger builds the process logger: a text handler at the configured
// level writing to the log file (or stderr when none is configured), with
// error records mirrored to stderr so failures surface even when file logging
// is active.
func initLogger() error {
	level := log.ConfigLevelStringToSlogLevel(currConfig.GetString(common.LogLevelConfigPath))

	var primaryOut io.Writer = streams.ErrOut
	if path := strings.TrimSpace(currConfig.GetString(common.LogFileConfigPath)); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return &cmd.ConfigurationError{
				Err: fmt.Errorf("cannot open log file %q: %w", path, err),
			}
		}
		logFile = f
		primaryOut = f
	}

	opts := &slog.HandlerOptions{Level: level}
	primary := slog.NewTextHandler(primaryOut, opts)

	var handler slog.Handler = primary
	if logFile != nil {
		secondary := slog.NewTextHandler(streams.ErrOut, &slog.HandlerOptions{Level: slog.LevelError})
		handler = log.NewDualHandler(primary, secondary)
	}

	logger = slog.New(handler)
	return nil
}

func initTheme() error {
	name := strings.TrimSpace(currConfig.GetString(common.ColorThemeConfigPath))
	if name == "" {
		name = common.DefaultColorTheme
	}
	if err := theme.SetCurrent(name); err != nil {
		return &cmd.ConfigurationError{
			Err: fmt.Errorf("unknown color theme %q: %w", name, err),
		}
	}
	return nil
}

func Execute(ctx context.Context, s *iostreams.IOStreams, bi *build.Info) {
	buildInfo = bi
	cobra.EnableTraverseRunHooks = true
	streams = s
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var executionError *cmd.ExecutionError
		if errors.As(err, &executionError) {
			fmt.Fprintln(s.ErrOut, executionError.Msg)
			if logger != nil {
				logger.Error(executionError.Msg, slog.String("error", executionError.Err.Error()))
			}
			os.Exit(1)
		}
		os.Exit(1)
	}
}
