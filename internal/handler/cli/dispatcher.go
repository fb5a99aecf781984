// Package cli 实现面向行的命令分发和交互式读取-执行循环。
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"text-blackboard/internal/domain"
	"text-blackboard/internal/render"
	"text-blackboard/internal/service"

	"github.com/sirupsen/logrus"
)

// Prompt 是交互循环每次读取前输出的提示
const Prompt = "Enter command: "

type command func(ctx context.Context, w io.Writer, args []string) error

// Dispatcher 把一行命令拆分为参数并调用画板操作。
type Dispatcher struct {
	board    *service.Board
	drawings *service.DrawingService
	render   render.Options
	log      *logrus.Entry
	commands map[string]command
}

// NewDispatcher 创建 Dispatcher 实例。
func NewDispatcher(board *service.Board, drawings *service.DrawingService, opts render.Options, logger *logrus.Logger) *Dispatcher {
	if board == nil || drawings == nil {
		panic("board and drawing service must be non-nil for Dispatcher")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	d := &Dispatcher{
		board:    board,
		drawings: drawings,
		render:   opts,
		log:      logger.WithField("component", "dispatcher"),
	}
	d.commands = map[string]command{
		"draw":   d.draw,
		"list":   d.list,
		"shapes": d.shapes,
		"undo":   d.undo,
		"clear":  d.clear,
		"remove": d.remove,
		"edit":   d.edit,
		"paint":  d.paint,
		"select": d.selectFigure,
		"save":   d.save,
		"load":   d.load,
		"add":    d.add,
		"exit":   func(context.Context, io.Writer, []string) error { return ErrExit },
	}
	return d
}

// commandList 供未知命令时的提示使用
func commandList() string {
	return "draw\nlist\nshapes\nundo\nclear\nremove\nedit\npaint\nselect\nsave\nload\nadd\nexit"
}

// Execute 执行一行命令，输出和错误提示都写入 w。
// 返回的错误用于调用方判断结果，所有错误都是可恢复的。
func (d *Dispatcher) Execute(ctx context.Context, w io.Writer, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		fmt.Fprintln(w, "Start typing")
		return nil
	}

	name, args := parts[0], parts[1:]
	cmd, ok := d.commands[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		fmt.Fprintln(w, Message(err))
		return err
	}

	err := cmd(ctx, w, args)
	if err != nil && !errors.Is(err, ErrExit) {
		d.log.WithFields(logrus.Fields{"command": name, "args": args}).WithError(err).Debug("Command failed")
		fmt.Fprintln(w, Message(err))
	}
	return err
}

// Run 是交互式读取-执行循环，遇到 exit 或输入结束时返回。
func Run(ctx context.Context, in io.Reader, out io.Writer, d *Dispatcher) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Execute(ctx, out, scanner.Text()); errors.Is(err, ErrExit) {
			return nil
		}
	}
}

func (d *Dispatcher) draw(_ context.Context, w io.Writer, _ []string) error {
	return render.Draw(w, d.board.Grid(), d.render)
}

func (d *Dispatcher) list(_ context.Context, w io.Writer, _ []string) error {
	lines := d.board.List()
	if len(lines) == 0 {
		fmt.Fprintln(w, " No figures on board")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func (d *Dispatcher) shapes(_ context.Context, w io.Writer, _ []string) error {
	return render.Shapes(w, d.render)
}

func (d *Dispatcher) undo(context.Context, io.Writer, []string) error {
	_, err := d.board.Undo()
	return err
}

func (d *Dispatcher) clear(context.Context, io.Writer, []string) error {
	d.board.Clear()
	return nil
}

func (d *Dispatcher) remove(_ context.Context, w io.Writer, _ []string) error {
	removed, err := d.board.Remove()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, removed.Describe())
	fmt.Fprintln(w, "Was removed")
	return nil
}

func (d *Dispatcher) edit(_ context.Context, _ io.Writer, args []string) error {
	if len(args) != 1 {
		return usage("Usage: edit <size>")
	}
	size, err := atoi(args[0])
	if err != nil {
		return err
	}
	_, err = d.board.Edit(size)
	return err
}

func (d *Dispatcher) paint(_ context.Context, _ io.Writer, args []string) error {
	if len(args) != 1 {
		return usage("Usage: paint <color>")
	}
	_, err := d.board.Paint(args[0])
	return err
}

func (d *Dispatcher) selectFigure(_ context.Context, w io.Writer, args []string) error {
	switch len(args) {
	case 2:
		x, err := atoi(args[0])
		if err != nil {
			return err
		}
		y, err := atoi(args[1])
		if err != nil {
			return err
		}
		f, err := d.board.SelectAt(x, y)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Selected "+f.Describe())
	case 1:
		id, err := atoi(args[0])
		if err != nil {
			return err
		}
		f, err := d.board.SelectByID(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Selected: "+f.Describe())
	default:
		return usage("Usage: select <x> <y> or select <id>")
	}
	return nil
}

func (d *Dispatcher) save(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 1 {
		return usage("Please provide a filename to save.")
	}
	if err := d.drawings.Save(ctx, d.board, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(w, "File has been successfully saved!")
	return nil
}

func (d *Dispatcher) load(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 1 {
		return usage("Please provide a filename to load.")
	}
	n, err := d.drawings.Load(ctx, d.board, args[0])
	if n > 0 {
		fmt.Fprintf(w, "Loaded %d figure(s)\n", n)
	}
	return err
}

func (d *Dispatcher) add(_ context.Context, _ io.Writer, args []string) error {
	if len(args) < 3 {
		return usage("Oups! It's incorrect command usage. Type shapes command to see correct usage")
	}
	kind, fillFlag, color := domain.Kind(args[0]), args[1], args[2]

	var fill bool
	switch fillFlag {
	case "fill":
		fill = true
	case "nofill":
		fill = false
	default:
		return usage("Fill flag must be 'fill' or 'nofill'")
	}

	params := make([]int, 0, len(args)-3)
	for _, raw := range args[3:] {
		v, err := atoi(raw)
		if err != nil {
			return err
		}
		params = append(params, v)
	}

	_, err := d.board.Add(kind, fill, color, params...)
	return err
}

func atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArgument, s)
	}
	return v, nil
}
