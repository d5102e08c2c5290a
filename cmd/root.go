// Package cmd provides the root command and CLI setup for srcalias.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"srcalias.dev/pkg/srcalias/internal/adapter"
	"srcalias.dev/pkg/srcalias/internal/controller"
	"srcalias.dev/pkg/srcalias/internal/domain"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportFlag is a root-level flag shared by commands that read/write run reports.
var reportFlag string

// excludePatterns filters files and directories out of the rewrite.
var excludePatterns []string

var aliasFlag string
var sourceRootFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const rootLongDescription = `srcalias rewrites relative TypeScript imports into the '@/' alias form.

An import is rewritten only when its number of '../' segments equals the
file's depth below the nearest 'src' directory, so

  src/a/b/c.ts:  import { X } from '../../Foo/Bar';

becomes

  src/a/b/c.ts:  import { X } from '@/Foo/Bar';

Files with .ts and .tsx extensions are rewritten in place. Directories named
node_modules are never entered. There is no dry run and no backup.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "srcalias [path]",
		Short:        "Rewrite relative TypeScript imports to the @/ alias",
		Long:         rootLongDescription,
		Version:      buildVersion(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Rewrite(cmd.Context(), rewriteArgs(args))
			return err
		},
	}
}

// newRootCmd builds a root command with its flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportFlag, reportFlagName, "r",
			viper.GetString(reportFlagName),
			"write (or, for view, read) a YAML report of the run at this path",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "skip paths matching a glob relative to the root (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().StringVar(&aliasFlag, aliasFlagName, viper.GetString(aliasConfigKey), "prefix that replaces the stripped '../' segments")
	bindFlagToConfig(cmd.Flags().Lookup(aliasFlagName), aliasConfigKey)

	cmd.Flags().StringVar(&sourceRootFlag, sourceRootFlagName, viper.GetString(sourceRootConfigKey), "directory name file depth is measured from")
	bindFlagToConfig(cmd.Flags().Lookup(sourceRootFlagName), sourceRootConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func rewriteArgs(args []string) domain.RewriteArgs {
	root := defaultRootPath
	if len(args) > 0 {
		root = args[0]
	}

	return domain.RewriteArgs{
		Root:       m.Path(root),
		Alias:      viper.GetString(aliasConfigKey),
		SourceRoot: viper.GetString(sourceRootConfigKey),
		Extensions: viper.GetStringSlice(extensionsConfigKey),
		Prune:      viper.GetStringSlice(pruneConfigKey),
		Exclude:    viper.GetStringSlice(excludeConfigKey),
		Report:     m.Path(viper.GetString(reportFlagName)),
	}
}
