// Package cli implements the mllab command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/resources"
	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

var (
	cfgFile      string
	verbose      bool
	resourcesDir string
)

var rootCmd = &cobra.Command{
	Use:   "mllab",
	Short: "Data management for machine-learning experiments",
	Long: `mllab generates, verifies and inspects the versioned dataset
artifacts behind the lab's datamanagers: data CSVs, nested k-fold
indices splits, and their checksums.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return util.InitLogger(cmd.Name())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mllab.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&resourcesDir, "resources", "", "directory holding the data artifacts")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("resources", rootCmd.PersistentFlags().Lookup("resources"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(splitsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(plotCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mllab")
	}

	viper.SetEnvPrefix("MLLAB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
	if viper.GetBool("verbose") {
		util.SetVerbose()
	}
}

// store builds the resource store from flag, config file and environment.
func store() *resources.Store {
	if dir := viper.GetString("resources"); dir != "" {
		return resources.NewStore(dir)
	}
	return resources.Default()
}
