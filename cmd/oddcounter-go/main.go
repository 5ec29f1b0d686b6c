// The oddcounter-go command is a small companion tool for the oddcounter
// library: it prints the build version and walks a counter through the
// documented lifecycle for manual inspection.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oddlabs/oddcounter-go/pkg/oddcounter"
	"github.com/oddlabs/oddcounter-go/pkg/oddcounter/logging"
)

var rootCmd = &cobra.Command{
	Use:   "oddcounter-go",
	Short: "Companion tool for the oddcounter library.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(oddcounter.Version)
	},
}

var (
	demoStart uint32
	demoSteps int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Construct a counter, increment it, and read it back.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(nil).With("component", "demo")
		ctx := cmd.Context()

		c, err := oddcounter.New(demoStart)
		if err != nil {
			if errors.Is(err, oddcounter.ErrEvenInitialValue) {
				return fmt.Errorf("start value must be odd, got %d", demoStart)
			}
			return err
		}
		logger.Info(ctx, "counter created", "start", demoStart)

		for i := 0; i < demoSteps; i++ {
			c.Increment()
			logger.Debug(ctx, "incremented", "value", c.Current())
		}

		logger.Info(ctx, "done", "steps", demoSteps, "value", c.Current())
		fmt.Println(c.Current())
		return nil
	},
}

func init() {
	demoCmd.Flags().Uint32Var(&demoStart, "start", 1, "odd starting value")
	demoCmd.Flags().IntVar(&demoSteps, "steps", 3, "number of increments")
	rootCmd.AddCommand(versionCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
