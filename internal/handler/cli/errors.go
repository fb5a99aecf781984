package cli

import (
	"errors"

	"text-blackboard/internal/codec"
	"text-blackboard/internal/service"
)

var (
	// ErrExit 表示用户请求退出交互循环
	ErrExit            = errors.New("exit requested")
	ErrUsage           = errors.New("incorrect command usage")
	ErrInvalidArgument = errors.New("invalid integer argument")
	ErrUnknownCommand  = errors.New("no such command")
)

// usageError 携带给用户的用法提示
type usageError struct {
	hint string
}

func (e usageError) Error() string        { return "usage: " + e.hint }
func (e usageError) Is(target error) bool { return target == ErrUsage }

func usage(hint string) error { return usageError{hint: hint} }

// Message 把命令执行的错误翻译为给用户看的提示。
func Message(err error) string {
	var ue usageError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ue):
		return ue.hint
	case errors.Is(err, ErrInvalidArgument):
		return "Please, provide only valid integers"
	case errors.Is(err, ErrUnknownCommand):
		return "No such command. Available commands are:\n" + commandList()
	case errors.Is(err, service.ErrDuplicateFigure):
		return "Same figure exists"
	case errors.Is(err, service.ErrOutsideBoard):
		return "Figure is outside the box"
	case errors.Is(err, service.ErrInvalidSize):
		return "Please, provide positive numbers for size"
	case errors.Is(err, service.ErrUnknownFigure), errors.Is(err, service.ErrInvalidParams):
		return "No such figure, enter 'shapes' to see available figures"
	case errors.Is(err, service.ErrNotImplemented):
		return "This figure is not implemented yet"
	case errors.Is(err, service.ErrEmptyBoard):
		return "No figures on board"
	case errors.Is(err, service.ErrOutOfBounds):
		return "Coordinates are outside the board"
	case errors.Is(err, service.ErrNoFigureAt):
		return "There is no figure on coordinates"
	case errors.Is(err, service.ErrFigureNotFound):
		return "No figures with that id"
	case errors.Is(err, service.ErrNothingSelected):
		return "Select a figure first"
	case errors.Is(err, service.ErrNotASquare):
		return "Selected figure is not a square."
	case errors.Is(err, codec.ErrCorruptFile):
		return "File structure damaged"
	case errors.Is(err, service.ErrInvalidDrawingName):
		return "Invalid file name"
	case errors.Is(err, service.ErrDrawingNotFound), errors.Is(err, service.ErrStorage):
		return "Unable to open file"
	default:
		return "Error: " + err.Error()
	}
}
