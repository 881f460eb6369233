package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/meta"
	"github.com/atlasbank/atlasctl/internal/util/i18n"
	"github.com/atlasbank/atlasctl/internal/util/normalizers"
)

const (
	ShowCommitFlagName   = "show-commit"
	ShowCommitConfigPath = "version.show-commit"
)

var (
	versionUse = "version"

	versionShort = i18n.T("root.version.versionShort", "Print the version")

	versionLong = normalizers.LongDesc(i18n.T("root.version.versionLong",
		`Print the build version and optionally the git commit it was built from.`))

	versionExamples = normalizers.Examples(i18n.T("root.version.versionExamples",
		fmt.Sprintf(`
	# Print the version
	%[1]s version
	# Print the version and commit information
	%[1]s version --show-commit
	`, meta.CLIName)))
)

type record struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
}

func bindFlags(c *cobra.Command, args []string) error {
	helper := cmd.BuildHelper(c, args)
	cfg, err := helper.GetConfig()
	if err != nil {
		return err
	}

	f := c.Flags().Lookup(ShowCommitFlagName)
	return cfg.BindFlag(ShowCommitConfigPath, f)
}

func validate(helper cmd.Helper) error {
	if len(helper.GetArgs()) > 0 {
		return &cmd.ConfigurationError{
			Err: fmt.Errorf("the version command does not accept arguments"),
		}
	}
	return nil
}

func run(helper cmd.Helper) error {
	cfg, err := helper.GetConfig()
	if err != nil {
		return err
	}
	outType, err := helper.GetOutputFormat()
	if err != nil {
		return err
	}
	info, err := helper.GetBuildInfo()
	if err != nil {
		return err
	}

	rec := record{Version: info.Version}
	if cfg.GetBool(ShowCommitConfigPath) {
		rec.Commit = info.Commit
		rec.Date = info.Date
	}

	out := helper.GetStreams().Out
	switch outType {
	case common.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case common.YAML:
		return yaml.NewEncoder(out).Encode(rec)
	default:
		if rec.Commit != "" {
			_, err = fmt.Fprintf(out, "%s (%s, built %s)\n", rec.Version, rec.Commit, rec.Date)
			return err
		}
		_, err = fmt.Fprintln(out, rec.Version)
		return err
	}
}

func NewVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:     versionUse,
		Short:   versionShort,
		Long:    versionLong,
		Example: versionExamples,
		PreRunE: bindFlags,
		RunE: func(c *cobra.Command, args []string) error {
			helper := cmd.BuildHelper(c, args)
			if err := validate(helper); err != nil {
				return err
			}
			return run(helper)
		},
	}

	versionCmd.Flags().Bool(ShowCommitFlagName, false,
		i18n.T("root.version."+ShowCommitFlagName, "Include the git commit and build date in the output."))

	return versionCmd
}
