// Package cmd wires the algokata command-line demos: small cobra commands
// that exercise the library packages from a terminal and keep a practice
// log in SQLite.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "algokata",
		Short: "classic algorithms, runnable from the terminal",
		Long: fmt.Sprintf(`algokata (v%s)

A practice room for the classic data structures and algorithms.
Each subcommand runs one of the library's exercises and prints
what the algorithm did on the way.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of algokata",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("algokata v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(fibCmd)
	RootCmd.AddCommand(palindromeCmd)
	RootCmd.AddCommand(anagramCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(sortCmd)
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(progressCmd)
}

// initConfig loads env files and binds ALGOKATA_* environment variables.
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("algokata")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindCommandFlags binds a command's flags to viper so that flags,
// env vars and defaults resolve in the usual precedence order.
func bindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
