package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gauss-project/ipfsclient/pkg/endpoint"
	"github.com/gauss-project/ipfsclient/pkg/ipfsapi"
	"github.com/gauss-project/ipfsclient/pkg/logging"
)

const (
	optionNameAPIPath   = "api-path"
	optionNameGateway   = "gateway"
	optionNameTimeout   = "timeout"
	optionNameVerbosity = "verbosity"
	optionNameOutput    = "output"
	optionNameKey       = "key"
	optionNameCreate    = "create"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "ipfsc",
			Short:         "client for the ipfs daemon http api",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	c.initAddCmd()
	c.initGetCmd()
	c.initResolveCmd()
	c.initLsCmd()
	c.initObjectCmd()
	c.initNameCmd()
	c.initKeyCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.ipfsc.yaml)")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".ipfsc"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".ipfsc" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("ipfsc")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func (c *command) setAllFlags(cmd *cobra.Command) {
	cmd.Flags().String(optionNameAPIPath, "", "daemon api descriptor file (default is $HOME/.ipfs/api)")
	cmd.Flags().String(optionNameGateway, "", "public gateway base url used when no local daemon is reachable")
	cmd.Flags().Duration(optionNameTimeout, 0, "request timeout, zero means no timeout")
	cmd.Flags().String(optionNameVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
}

// newService builds the api service from the bound configuration.
func (c *command) newService(cmd *cobra.Command) (*ipfsapi.Service, logging.Logger, error) {
	v := strings.ToLower(c.config.GetString(optionNameVerbosity))
	logger, err := newLogger(cmd, v)
	if err != nil {
		return nil, nil, fmt.Errorf("new logger: %v", err)
	}

	o := ipfsapi.Options{}
	if g := c.config.GetString(optionNameGateway); g != "" {
		u, err := url.Parse(g)
		if err != nil {
			return nil, nil, fmt.Errorf("gateway url: %v", err)
		}
		o.Gateway = u
	}

	resolver := endpoint.NewResolver(endpoint.WithAPIPath(c.config.GetString(optionNameAPIPath)))
	return ipfsapi.New(resolver, logger, o), logger, nil
}

// withTimeout applies the configured request timeout to ctx.
func (c *command) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	d := c.config.GetDuration(optionNameTimeout)
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func newLogger(cmd *cobra.Command, verbosity string) (logging.Logger, error) {
	var logger logging.Logger
	switch verbosity {
	case "0", "silent":
		logger = logging.New(io.Discard, 0)
	case "1", "error":
		logger = logging.New(cmd.ErrOrStderr(), logrus.ErrorLevel)
	case "2", "warn":
		logger = logging.New(cmd.ErrOrStderr(), logrus.WarnLevel)
	case "3", "info":
		logger = logging.New(cmd.ErrOrStderr(), logrus.InfoLevel)
	case "4", "debug":
		logger = logging.New(cmd.ErrOrStderr(), logrus.DebugLevel)
	case "5", "trace":
		logger = logging.New(cmd.ErrOrStderr(), logrus.TraceLevel)
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return logger, nil
}
