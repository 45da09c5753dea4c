package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/healthcare-chatbot/internal/logging"
	"github.com/DaanHessen/healthcare-chatbot/internal/startup"
	"github.com/DaanHessen/healthcare-chatbot/internal/ui"
	"github.com/DaanHessen/healthcare-chatbot/internal/util"
)

var version = "0.1.0-alpha"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "healthbot",
		Short:         "Healthcare chatbot entrypoint",
		Long:          "Resolves ENV (default \"development\") and reports the mode the chatbot runs in.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, envFile, stderr)
			if err := startup.Report(cmd.OutOrStdout(), cfg); err != nil {
				log := logging.WithComponent("main")
				log.Error().Err(err).Msg("startup report failed")
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("log-level", "", "Diagnostics level on stderr: trace|debug|info|warn|error (env LOG_LEVEL)")
	pf.String("theme", "", "About page palette (env HEALTHBOT_THEME)")
	pf.StringVar(&envFile, "env-file", "", "Load variables from a .env file; process variables win")

	root.AddCommand(newVersionCmd(), newAboutCmd(&envFile, stderr))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "healthbot", version)
		},
	}
}

func newAboutCmd(envFile *string, stderr io.Writer) *cobra.Command {
	var (
		listThemes bool
		style      string
	)
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Describe this build and its settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listThemes {
				for _, name := range ui.ThemeNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			cfg := loadConfig(cmd, *envFile, stderr)
			page, err := ui.RenderAbout(cfg, style)
			if err != nil {
				log := logging.WithComponent("about")
				log.Error().Err(err).Msg("render failed")
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), page)
			return nil
		},
	}
	cmd.Flags().BoolVar(&listThemes, "list-themes", false, "Print the palette names and exit")
	cmd.Flags().StringVar(&style, "style", "", "Markdown style: dark|light|notty|ascii (auto when empty)")
	return cmd
}

// loadConfig reads the optional env file, resolves settings and configures
// the stderr logger. It never fails; problems are logged.
func loadConfig(cmd *cobra.Command, envFile string, stderr io.Writer) util.Config {
	dotenvErr := util.LoadDotenv(envFile)

	cfg := util.Load(cmd.Flags())
	cfg.Version = version

	log := logging.Configure(logging.Config{Level: cfg.LogLevel, Output: stderr, Version: version})
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Msg("env file ignored")
	}
	log.Debug().Str("env", cfg.Env).Str("theme", cfg.Theme).Msg("config resolved")
	return cfg
}
