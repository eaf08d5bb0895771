package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/gregLibert/bit-operation/pkg/bitop"
)

type argKind int

const (
	// operandArg is a register value (data, bit, mask, field value). It must fit the width.
	operandArg argKind = iota
	// countArg is a position, an offset, a field width or a shift.
	countArg
	// truthArg is a boolean given as a number or a word.
	truthArg
)

type argSpec struct {
	name string
	kind argKind
}

// operation describes one command of the bitop catalog.
type operation struct {
	name     string
	short    string
	args     []argSpec
	rotation bool
}

var (
	dataArg  = argSpec{"data", operandArg}
	bitArg   = argSpec{"bit", operandArg}
	maskArg  = argSpec{"mask", operandArg}
	startArg = argSpec{"start", countArg}
	widthArg = argSpec{"width", countArg}
	shiftArg = argSpec{"shift", countArg}
)

var operations = []operation{
	{name: "set", short: "Set the bits of <bit> in <data>", args: []argSpec{dataArg, bitArg}},
	{name: "clear", short: "Clear the bits of <bit> in <data>", args: []argSpec{dataArg, bitArg}},
	{name: "check", short: "Report whether any bit of <bit> is set in <data>", args: []argSpec{dataArg, bitArg}},
	{name: "toggle", short: "Invert the bits of <bit> in <data>", args: []argSpec{dataArg, bitArg}},
	{name: "setvalue", short: "Set or clear the bits of <bit> in <data> depending on <value>",
		args: []argSpec{dataArg, bitArg, {"value", truthArg}}},
	{name: "flip", short: "Invert every bit of <data>", args: []argSpec{dataArg}},
	{name: "setmask", short: "Set every bit of <mask> in <data>", args: []argSpec{dataArg, maskArg}},
	{name: "clearmask", short: "Clear every bit of <mask> in <data>", args: []argSpec{dataArg, maskArg}},
	{name: "checkmask", short: "Report whether all the bits of <mask> are set in <data>", args: []argSpec{dataArg, maskArg}},
	{name: "get", short: "Print the bit of <data> at zero-based <pos>", args: []argSpec{dataArg, {"pos", countArg}}},
	{name: "setrange", short: "Write <value> into the <width>-bit field of <data> starting at <start>",
		args: []argSpec{dataArg, startArg, widthArg, {"value", operandArg}}},
	{name: "getrange", short: "Print the <width>-bit field of <data> starting at <start>",
		args: []argSpec{dataArg, startArg, widthArg}},
	{name: "rotl", short: "Rotate the low --size bits of <data> left by <shift>", args: []argSpec{dataArg, shiftArg}, rotation: true},
	{name: "rotr", short: "Rotate the low --size bits of <data> right by <shift>", args: []argSpec{dataArg, shiftArg}, rotation: true},
}

// result is either a register value or a truth value.
type result struct {
	value  uint64
	truth  bool
	isBool bool
}

func (r result) render(width uint, format string) string {
	if r.isBool {
		return strconv.FormatBool(r.truth)
	}
	return formatValue(r.value, width, format)
}

// evaluate runs op on a T-wide operand. in holds the parsed arguments, data first.
func evaluate[T constraints.Unsigned](op string, in []uint64, size uint, checked bool) (result, error) {
	data := T(in[0])

	switch op {
	case "set":
		bitop.Set(&data, T(in[1]))
	case "clear":
		bitop.Clear(&data, T(in[1]))
	case "check":
		return result{truth: bitop.Check(data, T(in[1])), isBool: true}, nil
	case "toggle":
		bitop.Toggle(&data, T(in[1]))
	case "setvalue":
		bitop.SetValue(&data, T(in[1]), in[2] != 0)
	case "flip":
		bitop.Flip(&data)
	case "setmask":
		bitop.SetMask(&data, T(in[1]))
	case "clearmask":
		bitop.ClearMask(&data, T(in[1]))
	case "checkmask":
		return result{truth: bitop.CheckMask(data, T(in[1])), isBool: true}, nil
	case "get":
		if !checked {
			return result{value: uint64(bitop.Get(data, uint(in[1])))}, nil
		}
		v, err := bitop.GetChecked(data, uint(in[1]))
		return result{value: uint64(v)}, err
	case "setrange":
		if !checked {
			bitop.SetRange(&data, uint(in[1]), uint(in[2]), T(in[3]))
			break
		}
		if err := bitop.SetRangeChecked(&data, uint(in[1]), uint(in[2]), T(in[3])); err != nil {
			return result{}, err
		}
	case "getrange":
		if !checked {
			return result{value: uint64(bitop.GetRange(data, uint(in[1]), uint(in[2])))}, nil
		}
		v, err := bitop.GetRangeChecked(data, uint(in[1]), uint(in[2]))
		return result{value: uint64(v)}, err
	case "rotl":
		if !checked {
			bitop.RotateLeft(&data, uint(in[1]), size)
			break
		}
		if err := bitop.RotateLeftChecked(&data, uint(in[1]), size); err != nil {
			return result{}, err
		}
	case "rotr":
		if !checked {
			bitop.RotateRight(&data, uint(in[1]), size)
			break
		}
		if err := bitop.RotateRightChecked(&data, uint(in[1]), size); err != nil {
			return result{}, err
		}
	default:
		return result{}, fmt.Errorf("unknown operation %q", op)
	}

	return result{value: uint64(data)}, nil
}

// dispatch instantiates evaluate for the operand width.
func dispatch(op string, width uint, in []uint64, size uint, checked bool) (result, error) {
	switch width {
	case 8:
		return evaluate[uint8](op, in, size, checked)
	case 16:
		return evaluate[uint16](op, in, size, checked)
	case 32:
		return evaluate[uint32](op, in, size, checked)
	case 64:
		return evaluate[uint64](op, in, size, checked)
	}
	return result{}, fmt.Errorf("unsupported width %d", width)
}

// OperationCommand runs one operation of the catalog.
type OperationCommand struct {
	cli  *Cli
	cmd  *cobra.Command
	op   operation
	size uint
}

// newOperationCommand builds the command for op.
func newOperationCommand(cli *Cli, op operation) *cobra.Command {
	o := &OperationCommand{cli: cli, op: op}

	names := make([]string, len(op.args))
	for i, a := range op.args {
		names[i] = "<" + a.name + ">"
	}

	o.cmd = &cobra.Command{
		Use:   op.name + " " + strings.Join(names, " "),
		Short: op.short,
		Args:  cobra.ExactArgs(len(op.args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(args)
		},
	}
	o.addFlags()
	return o.cmd
}

func (o *OperationCommand) addFlags() {
	if o.op.rotation {
		o.cmd.Flags().UintVar(&o.size, "size", 0, "width of the rotated field in bits (default is the operand width)")
	}
}

func (o *OperationCommand) run(args []string) error {
	cfg := o.cli.Config

	in, err := o.parseArgs(args, cfg.Width)
	if err != nil {
		return err
	}

	size := o.size
	if size == 0 {
		size = cfg.Width
	}

	res, err := dispatch(o.op.name, cfg.Width, in, size, cfg.Checked)
	if err != nil {
		o.cli.Logger().Warn("operation rejected", "op", o.op.name, "args", args, "width", cfg.Width, "err", err)
		return fmt.Errorf("%s: %w", o.op.name, err)
	}
	o.cli.Logger().Debug("operation evaluated", "op", o.op.name, "args", args, "width", cfg.Width,
		"size", size, "checked", cfg.Checked, "result", res.render(cfg.Width, formatHex))

	_, err = fmt.Fprintln(o.cmd.OutOrStdout(), res.render(cfg.Width, cfg.Format))
	return err
}

func (o *OperationCommand) parseArgs(args []string, width uint) ([]uint64, error) {
	in := make([]uint64, len(args))
	for i, a := range o.op.args {
		var err error
		switch a.kind {
		case operandArg:
			in[i], err = parseOperand(args[i], width)
		case countArg:
			in[i], err = parseNumber(args[i])
		case truthArg:
			var b bool
			b, err = parseBool(args[i])
			if b {
				in[i] = 1
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s <%s>: %w", o.op.name, a.name, err)
		}
	}
	return in, nil
}

func init() {
	for _, op := range operations {
		AddCommand(func(c *Cli) *cobra.Command {
			return newOperationCommand(c, op)
		})
	}
}
