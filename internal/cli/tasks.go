package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/daylist/internal/model"
	"github.com/idilsaglam/daylist/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <label...>",
		Short: "Add a pending task (label can be multiple words)",
		Example: `  daylist add "Buy milk"
  daylist add Walk the dog`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.doAdd(cmd, strings.Join(args, " "))
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "done <item-id>",
		Short:   "Check off a task by element id (item3) or number (3)",
		Example: "  daylist done item2\n  daylist done 2",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.doDone(cmd, elementID(args[0]))
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var (
		group  bool
		output string
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the greeting and the task list",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.doList(cmd, group, output)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

// elementID accepts "item3" or a bare "3".
func elementID(arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.Trim(arg, "0123456789") != "" {
		return arg
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return model.ElementID(n)
	}
	return arg
}

// -------------- subcommand impls ----------------

func (a *app) doAdd(cmd *cobra.Command, label string) error {
	sess, closeStore, err := a.openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	e := sess.Add(label)
	if err := sess.Save(cmd.Context()); err != nil {
		return err
	}
	ui.OK("added " + e.ElementID())
	return nil
}

func (a *app) doDone(cmd *cobra.Command, id string) error {
	sess, closeStore, err := a.openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	if !sess.SetDone(id) {
		// Unknown ids are a no-op, not a failure.
		fmt.Fprintln(ui.Err, ui.C(ui.Current().Muted, "no task "+id+"; nothing changed"))
		ui.Hint("run `daylist ls` to see task ids")
		return nil
	}
	if err := sess.Save(cmd.Context()); err != nil {
		return err
	}
	ui.OK("checked off " + id)
	return nil
}

func (a *app) doList(cmd *cobra.Command, group bool, output string) error {
	sess, closeStore, err := a.openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	switch strings.ToLower(output) {
	case "text", "":
		sess.Greet()
		ui.Panel(out, ui.PageLines(sess.Document(), group))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sess.List().Snapshot()); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(sess.List().Snapshot()); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
	default:
		return usageErrorf("unknown output format %q (want text, json or yaml)", output)
	}
	return nil
}
