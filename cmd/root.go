package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsundoku",
	Short: "tsundoku cli",
	Long:  `tsundoku cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("TSUNDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("poller.interval", "900")
	viper.SetDefault("watcher.interval", "15s")

	viper.SetDefault("deluge.scheme", "http")
	viper.SetDefault("deluge.host", "localhost")
	viper.SetDefault("deluge.port", 8112)
	viper.SetDefault("deluge.password", "deluge")

	viper.SetDefault("server.port", 6439)

	viper.SetDefault("storage.filePath", "tsundoku.sqlite")
}
