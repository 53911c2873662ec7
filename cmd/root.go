// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/internal/config"
	"github.com/xkilldash9x/clickpoint/internal/observability"
)

// globalOptions are the persistent flags plus the configuration they resolve
// to. cfg is populated before any subcommand runs.
type globalOptions struct {
	configFile string
	url        string

	cfg config.Interface
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own viper instance.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	v := viper.New()

	root := &cobra.Command{
		Use:           "clickpoint",
		Short:         "Locate page elements on screen and click them like a user would.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := loadConfig(v, opts.configFile)
			if err != nil {
				return err
			}
			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Configuration loaded.", zap.String("version", Version), zap.String("backend", cfg.Input().Backend))
			opts.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./config.yaml or ~/.clickpoint/config.yaml)")
	pf.StringVar(&opts.url, "url", "", "navigate to this URL before acting")
	pf.String("remote", "", "DevTools websocket URL of an already running browser")
	pf.String("backend", "", "input backend: cdp or os")
	pf.Int("pid", 0, "process id owning the browser window (os backend)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newLocateCmd(opts),
		newClickCmd(opts),
		newInspectCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	observability.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bindFlags maps the persistent override flags onto their config keys. Flags
// only take effect when set, so file and environment values survive.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlag("browser.remote_url", cmd.Flags().Lookup("remote")); err != nil {
		return fmt.Errorf("error binding remote flag: %w", err)
	}
	if err := v.BindPFlag("input.backend", cmd.Flags().Lookup("backend")); err != nil {
		return fmt.Errorf("error binding backend flag: %w", err)
	}
	if err := v.BindPFlag("input.window_pid", cmd.Flags().Lookup("pid")); err != nil {
		return fmt.Errorf("error binding pid flag: %w", err)
	}
	return nil
}

// loadConfig reads the config file, CLICKPOINT_* environment variables and
// bound flags on top of the defaults. A missing config file is not an error.
func loadConfig(v *viper.Viper, configFile string) (*config.Config, error) {
	config.SetDefaults(v)

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return nil, fmt.Errorf("error expanding config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home + "/.clickpoint")
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CLICKPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return config.NewConfigFromViper(v)
}
