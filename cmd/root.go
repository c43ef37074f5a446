package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/telldus-live/internal/pkg/logging"
)

var _rootCmdOpts struct {
	configFile string
	debug      bool
}

var rootCmd = &cobra.Command{
	Use:   "telldus-live",
	Short: "Query and control Telldus Live devices and sensors",

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _rootCmdOpts.debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		return logging.Configure(viper.GetViper())
	},

	SilenceUsage: true,
}

// Execute runs the root command, which dispatches to a sub-command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.configFile, "config", "", "config file (default is $HOME/.telldus-live.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&_rootCmdOpts.debug, "debug", "d", false, "enable debug logging")
}

func initConfig() {
	if _rootCmdOpts.configFile != "" {
		viper.SetConfigFile(_rootCmdOpts.configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".telldus-live")
	}

	viper.SetEnvPrefix("TELLDUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Logger(nil).Debugf("Using config file %s", viper.ConfigFileUsed())
	}
}

func checkRequiredFlags(needFlags ...string) error {
	missingFlags := []string{}

	for _, f := range needFlags {
		if !viper.IsSet(f) {
			missingFlags = append(missingFlags, f)
		}
	}

	if len(missingFlags) > 0 {
		itemPlural := "item"
		if len(missingFlags) > 1 {
			itemPlural = "items"
		}
		return fmt.Errorf("required config %s `%s` not set", itemPlural, strings.Join(missingFlags, "`, `"))
	}

	return nil
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}
