package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// DescribeCommand prints a value field by field against a layout.
type DescribeCommand struct {
	cli *Cli
	cmd *cobra.Command
}

// NewDescribeCommand returns the describe command, which parses a value at the layout size
// and prints it field by field.
func NewDescribeCommand(cli *Cli) *cobra.Command {
	d := &DescribeCommand{cli: cli}
	d.cmd = &cobra.Command{
		Use:   "describe <layout> <value>",
		Short: "Decode a value against a register layout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.describe(args[0], args[1])
		},
	}
	return d.cmd
}

func (d *DescribeCommand) describe(name, value string) error {
	l, err := d.cli.layouts.Get(name)
	if err != nil {
		return err
	}
	raw, err := parseOperand(value, l.Size)
	if err != nil {
		return fmt.Errorf("describe %s: %w", l.Name, err)
	}

	d.cli.Logger().Debug("describe", "layout", l.Name, "raw", raw)
	_, err = fmt.Fprintln(d.cmd.OutOrStdout(), l.Describe(raw))
	return err
}

// EncodeCommand builds a value from field assignments.
type EncodeCommand struct {
	cli *Cli
	cmd *cobra.Command
}

// NewEncodeCommand returns the encode command, which sets each field=value assignment on a
// zero value and prints the result in the configured format. Omitted fields stay zero.
func NewEncodeCommand(cli *Cli) *cobra.Command {
	e := &EncodeCommand{cli: cli}
	e.cmd = &cobra.Command{
		Use:   "encode <layout> [field=value ...]",
		Short: "Build a value from field assignments of a register layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.encode(args[0], args[1:])
		},
	}
	return e.cmd
}

func (e *EncodeCommand) encode(name string, assignments []string) error {
	l, err := e.cli.layouts.Get(name)
	if err != nil {
		return err
	}

	values := make(map[string]uint64, len(assignments))
	for _, a := range assignments {
		field, literal, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("encode %s: %q is not a field=value assignment", l.Name, a)
		}
		v, err := parseNumber(literal)
		if err != nil {
			return fmt.Errorf("encode %s.%s: %w", l.Name, field, err)
		}
		values[field] = v
	}

	raw, err := l.Encode(values)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	e.cli.Logger().Debug("encode", "layout", l.Name, "fields", len(values), "raw", raw)
	_, err = fmt.Fprintln(e.cmd.OutOrStdout(), formatValue(raw, l.Size, e.cli.Config.Format))
	return err
}

// NewLayoutsCommand returns the layouts command, which lists every known layout with its
// size and field positions.
func NewLayoutsCommand(cli *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the register layouts known to describe and encode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range cli.layouts.Names() {
				l, err := cli.layouts.Get(name)
				if err != nil {
					return err
				}
				fields := make([]string, 0, len(l.Fields))
				for _, f := range l.Fields {
					fields = append(fields, f.Name+f.Bits())
				}
				if _, err := fmt.Fprintf(out, "%s (%d bits): %s\n", name, l.Size, strings.Join(fields, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func init() {
	AddCommand(NewDescribeCommand)
	AddCommand(NewEncodeCommand)
	AddCommand(NewLayoutsCommand)
}
