package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/daylist/internal/greeting"
	"github.com/idilsaglam/daylist/internal/ui"
)

func newGreetCmd(a *app) *cobra.Command {
	var hour int
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print the greeting for the time of day",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var text string
			if cmd.Flags().Changed("hour") {
				if hour < 0 || hour > 23 {
					return usageErrorf("greet: hour must be 0-23, got %d", hour)
				}
				text = greeting.ForHour(hour)
			} else {
				clock, err := a.clock()
				if err != nil {
					return err
				}
				text = greeting.Greeting(clock())
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.C(ui.Current().Title, text))
			return nil
		},
	}
	cmd.Flags().IntVar(&hour, "hour", 0, "greet as if it were this hour (0-23)")
	return cmd
}
