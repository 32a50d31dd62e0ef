package robot

import (
	"fmt"

	"gopatterns/patterns/command"
)

// Command 机器人命令（封闭枚举）
type Command int

const (
	MoveForward Command = iota
	TurnRight
	TurnLeft
)

var _ command.ICommand[Robot] = MoveForward

func (c Command) String() string {
	switch c {
	case MoveForward:
		return "MoveForward"
	case TurnRight:
		return "TurnRight"
	case TurnLeft:
		return "TurnLeft"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Execute 实现 command.ICommand
//
// TurnRight: (dx, dy) <- (dy, -dx)；TurnLeft: (dx, dy) <- (-dy, dx)。
func (c Command) Execute(r *Robot) {
	switch c {
	case MoveForward:
		r.MoveForward()
	case TurnRight:
		dx, dy := r.Direction()
		r.SetDirection(dy, -dx)
	case TurnLeft:
		dx, dy := r.Direction()
		r.SetDirection(-dy, dx)
	default:
		panic(fmt.Sprintf("robot: unknown command %d", int(c)))
	}
}

// Undo 实现 command.ICommand
//
// 左右转互为逆操作。MoveForward 的撤销由其他命令组合而成：
// 掉头（两次右转）、前进一格、再掉头回来。
func (c Command) Undo(r *Robot) {
	switch c {
	case MoveForward:
		TurnRight.Execute(r)
		TurnRight.Execute(r)
		MoveForward.Execute(r)
		TurnRight.Execute(r)
		TurnRight.Execute(r)
	case TurnRight:
		TurnLeft.Execute(r)
	case TurnLeft:
		TurnRight.Execute(r)
	default:
		panic(fmt.Sprintf("robot: unknown command %d", int(c)))
	}
}

// Invoker 机器人命令调用器
type Invoker = command.Invoker[Robot, Command]

// NewInvoker 创建独占 r 的调用器
func NewInvoker(r *Robot, opts ...command.Option) *Invoker {
	return command.NewInvoker[Robot, Command](r, opts...)
}
