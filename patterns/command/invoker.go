package command

import (
	"context"

	"github.com/google/uuid"

	"gopatterns/logging"
)

type entry[C any] struct {
	id  uuid.UUID
	cmd C
}

type options struct {
	logger logging.Logger
}

// Option 调用器选项
type Option func(*options)

// WithLogger 设置日志器，每次执行/撤销输出一条 Debug 日志
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Invoker 命令调用器
//
// 调用器在其生命周期内独占目标对象，调用方不应再通过其他引用读写目标。
// 非并发安全：所有操作按程序顺序同步执行。
type Invoker[T any, C ICommand[T]] struct {
	target  *T
	entries []entry[C]
	cursor  int
	logger  logging.Logger
}

// NewInvoker 创建调用器，待执行队列和历史栈均为空
//
// target 为 nil 属于编程错误，直接 panic。
func NewInvoker[T any, C ICommand[T]](target *T, opts ...Option) *Invoker[T, C] {
	if target == nil {
		panic("command: NewInvoker called with nil target")
	}

	o := options{logger: logging.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Invoker[T, C]{
		target: target,
		logger: o.logger.WithFields(logging.String("component", "command.invoker")),
	}
}

// Target 返回目标的当前值（副本）
func (inv *Invoker[T, C]) Target() T {
	return *inv.target
}

// AppendCommand 将命令追加到待执行队列末尾，返回该条目的 ID
func (inv *Invoker[T, C]) AppendCommand(c C) uuid.UUID {
	id := uuid.New()
	inv.entries = append(inv.entries, entry[C]{id: id, cmd: c})
	return id
}

// ExecuteCommand 执行待执行队列队首的命令并压入历史栈
//
// 队列为空时不做任何事，返回 false。
func (inv *Invoker[T, C]) ExecuteCommand() bool {
	if inv.cursor >= len(inv.entries) {
		return false
	}

	e := inv.entries[inv.cursor]
	e.cmd.Execute(inv.target)
	inv.cursor++

	inv.logger.Debug(context.Background(), "command executed", inv.fields(e)...)
	return true
}

// ExecuteAllCommands 依次执行直到待执行队列为空，返回执行的命令数
func (inv *Invoker[T, C]) ExecuteAllCommands() int {
	n := 0
	for inv.ExecuteCommand() {
		n++
	}
	return n
}

// Undo 撤销历史栈栈顶的命令，并将其放回待执行队列最前面
//
// 历史栈为空时不做任何事，返回 false。
func (inv *Invoker[T, C]) Undo() bool {
	if inv.cursor == 0 {
		return false
	}

	inv.cursor--
	e := inv.entries[inv.cursor]
	e.cmd.Undo(inv.target)

	inv.logger.Debug(context.Background(), "command undone", inv.fields(e)...)
	return true
}

// PendingLen 待执行命令数
func (inv *Invoker[T, C]) PendingLen() int {
	return len(inv.entries) - inv.cursor
}

// HistoryLen 已执行命令数
func (inv *Invoker[T, C]) HistoryLen() int {
	return inv.cursor
}

// Pending 返回待执行队列的副本，队首在前
func (inv *Invoker[T, C]) Pending() []C {
	return commandsOf(inv.entries[inv.cursor:])
}

// History 返回历史栈的副本，栈底在前、栈顶在后
func (inv *Invoker[T, C]) History() []C {
	return commandsOf(inv.entries[:inv.cursor])
}

func (inv *Invoker[T, C]) fields(e entry[C]) []logging.Field {
	return []logging.Field{
		logging.String("entry_id", e.id.String()),
		logging.String("command", commandName(e.cmd)),
		logging.Int("pending", inv.PendingLen()),
		logging.Int("history", inv.HistoryLen()),
	}
}

func commandsOf[C any](entries []entry[C]) []C {
	out := make([]C, len(entries))
	for i, e := range entries {
		out[i] = e.cmd
	}
	return out
}
