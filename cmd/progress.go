package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/algokata/algokata/progress"
)

var (
	practiceLog progress.Store

	progressCmd = &cobra.Command{
		Use:               "progress",
		Short:             "Track practice attempts in a local SQLite log",
		PersistentPreRunE: openPracticeLog,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if practiceLog == nil {
				return nil
			}
			return practiceLog.Close()
		},
	}

	progressRecordCmd = &cobra.Command{
		Use:   "record EXERCISE",
		Short: "Record one attempt at an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(viper.GetString("duration"))
			if err != nil {
				return fmt.Errorf("invalid duration: %v", err)
			}
			err = practiceLog.RecordAttempt(cmd.Context(), args[0],
				viper.GetString("topic"), viper.GetInt("score"), d)
			if err != nil {
				return err
			}
			fmt.Printf("recorded %s: score %d in %v\n", args[0], viper.GetInt("score"), d)
			return nil
		},
	}

	progressListCmd = &cobra.Command{
		Use:   "list [EXERCISE]",
		Short: "List attempts, or all exercise summaries when no exercise is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				stats, err := practiceLog.Exercises(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("%-24s%-12s%10s%8s\n", "exercise", "topic", "attempts", "best")
				for _, s := range stats {
					fmt.Printf("%-24s%-12s%10d%8d\n", s.Name, s.Topic, s.Attempts, s.Best)
				}
				return nil
			}

			attempts, err := practiceLog.Attempts(cmd.Context(), args[0], viper.GetInt("limit"))
			if err != nil {
				return err
			}
			for _, a := range attempts {
				fmt.Printf("%s\tscore %3d\t%v\n", a.At.Format(time.RFC3339), a.Score, a.Duration)
			}
			return nil
		},
	}

	progressBestCmd = &cobra.Command{
		Use:   "best EXERCISE",
		Short: "Show the best attempt at an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := practiceLog.Best(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: score %d in %v (%s)\n", a.Exercise, a.Score, a.Duration,
				a.At.Format(time.RFC3339))
			return nil
		},
	}
)

func init() {
	progressCmd.PersistentFlags().String("db", "", "path to the practice log (default ~/.algokata.db)")

	progressRecordCmd.Flags().String("topic", "misc", "topic the exercise belongs to")
	progressRecordCmd.Flags().Int("score", 100, "score for this attempt (0..100)")
	progressRecordCmd.Flags().String("duration", "0s", "how long the attempt took, e.g. 2m30s")

	progressListCmd.Flags().Int("limit", 0, "show at most this many attempts (0 = all)")

	progressCmd.AddCommand(progressRecordCmd)
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressBestCmd)
}

// openPracticeLog opens the SQLite store at --db, ALGOKATA_DB or the
// default location under the home directory.
func openPracticeLog(cmd *cobra.Command, _ []string) error {
	if err := bindCommandFlags(cmd); err != nil {
		return err
	}

	path := viper.GetString("db")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %v", err)
		}
		path = filepath.Join(home, ".algokata.db")
	}

	store, err := progress.NewSQLite(path)
	if err != nil {
		return err
	}
	practiceLog = store
	return nil
}
