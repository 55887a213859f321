package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "metagraph",
		Short: "Metagraph: set-to-set graph analysis tool",
		Long: `Metagraph analyzes metagraphs: directed graphs whose edges connect
sets of elements instead of single vertices.

Documents are YAML files carrying a generating set (or a variable and
proposition partition for conditional metagraphs) and an edge list; the
subcommands compute matrices, metapaths, and resolved contexts over them.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command with all subcommands attached.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.metagraph.yaml)")
	rootCmd.PersistentFlags().String("doc", "", "path to the metagraph document (YAML)")

	viper.BindPFlag("doc", rootCmd.PersistentFlags().Lookup("doc"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".metagraph")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
