package command

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/logging"
)

// ledger 测试目标：记录余额与操作顺序
type ledger struct {
	balance int
	trail   []string
}

// deposit 存入 n，撤销时取回
type deposit int

func (d deposit) Execute(l *ledger) {
	l.balance += int(d)
	l.trail = append(l.trail, "+"+strconv.Itoa(int(d)))
}

func (d deposit) Undo(l *ledger) {
	l.balance -= int(d)
	l.trail = append(l.trail, "-"+strconv.Itoa(int(d)))
}

// funcCommand 由一对函数构成的命令
type funcCommand[T any] struct {
	name     string
	execFunc func(target *T)
	undoFunc func(target *T)
}

func (f funcCommand[T]) Execute(target *T) { f.execFunc(target) }
func (f funcCommand[T]) Undo(target *T)    { f.undoFunc(target) }
func (f funcCommand[T]) String() string    { return f.name }

func newLedgerInvoker(opts ...Option) (*ledger, *Invoker[ledger, deposit]) {
	l := &ledger{}
	return l, NewInvoker[ledger, deposit](l, opts...)
}

func TestInvoker_StartsEmpty(t *testing.T) {
	_, inv := newLedgerInvoker()

	assert.Zero(t, inv.PendingLen())
	assert.Zero(t, inv.HistoryLen())
	assert.Empty(t, inv.Pending())
	assert.Empty(t, inv.History())
	assert.Equal(t, ledger{}, inv.Target())
}

func TestInvoker_NilTargetPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewInvoker[ledger, deposit](nil)
	})
}

func TestInvoker_AppendDoesNotExecute(t *testing.T) {
	l, inv := newLedgerInvoker()

	id1 := inv.AppendCommand(1)
	id2 := inv.AppendCommand(2)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, []deposit{1, 2}, inv.Pending())
	assert.Zero(t, l.balance)
	assert.Empty(t, l.trail)
}

func TestInvoker_ExecuteIsFIFO(t *testing.T) {
	l, inv := newLedgerInvoker()
	inv.AppendCommand(1)
	inv.AppendCommand(2)
	inv.AppendCommand(3)

	require.True(t, inv.ExecuteCommand())
	assert.Equal(t, []string{"+1"}, l.trail)
	assert.Equal(t, []deposit{2, 3}, inv.Pending())
	assert.Equal(t, []deposit{1}, inv.History())

	assert.Equal(t, 2, inv.ExecuteAllCommands())
	assert.Equal(t, []string{"+1", "+2", "+3"}, l.trail)
	assert.Zero(t, inv.PendingLen())
	assert.Equal(t, []deposit{1, 2, 3}, inv.History())
	assert.Equal(t, 6, inv.Target().balance)
}

func TestInvoker_EmptyOperationsAreNoops(t *testing.T) {
	l, inv := newLedgerInvoker()

	assert.False(t, inv.ExecuteCommand())
	assert.False(t, inv.Undo())
	assert.Zero(t, inv.ExecuteAllCommands())
	assert.Empty(t, l.trail)
}

func TestInvoker_UndoRequeuesAtFront(t *testing.T) {
	l, inv := newLedgerInvoker()
	inv.AppendCommand(1)
	inv.AppendCommand(2)
	inv.AppendCommand(3)
	inv.ExecuteCommand()
	inv.ExecuteCommand()

	// history [1 2], pending [3]
	require.True(t, inv.Undo())
	assert.Equal(t, []deposit{2, 3}, inv.Pending())
	assert.Equal(t, []deposit{1}, inv.History())

	require.True(t, inv.Undo())
	assert.Equal(t, []deposit{1, 2, 3}, inv.Pending(), "撤销的命令按原执行顺序重新排队")
	assert.Empty(t, inv.History())
	assert.Zero(t, l.balance)
	assert.Equal(t, []string{"+1", "+2", "-2", "-1"}, l.trail)

	assert.False(t, inv.Undo())
}

func TestInvoker_ReExecuteAfterUndo(t *testing.T) {
	l, inv := newLedgerInvoker()
	inv.AppendCommand(5)
	inv.ExecuteAllCommands()
	inv.Undo()

	require.True(t, inv.ExecuteCommand())
	assert.Equal(t, 5, l.balance)
	assert.Equal(t, []string{"+5", "-5", "+5"}, l.trail)
	assert.Equal(t, 1, inv.HistoryLen())
}

func TestInvoker_AppendAfterUndoGoesToBack(t *testing.T) {
	_, inv := newLedgerInvoker()
	inv.AppendCommand(1)
	inv.AppendCommand(2)
	inv.ExecuteAllCommands()
	inv.Undo()

	inv.AppendCommand(9)
	assert.Equal(t, []deposit{2, 9}, inv.Pending())
	assert.Equal(t, []deposit{1}, inv.History())
}

// 执行全部后，历史长度 = 追加总数，待执行为空
func TestInvoker_ExecuteAllAccounting(t *testing.T) {
	_, inv := newLedgerInvoker()
	for i := 1; i <= 7; i++ {
		inv.AppendCommand(deposit(i))
	}
	inv.ExecuteCommand()
	inv.ExecuteCommand()
	inv.ExecuteCommand()
	inv.Undo()

	n := inv.ExecuteAllCommands()
	assert.Equal(t, 5, n)
	assert.Zero(t, inv.PendingLen())
	assert.Equal(t, 7, inv.HistoryLen())
}

func TestInvoker_ReturnedSlicesAreCopies(t *testing.T) {
	_, inv := newLedgerInvoker()
	inv.AppendCommand(1)
	inv.AppendCommand(2)

	p := inv.Pending()
	p[0] = 100
	assert.Equal(t, []deposit{1, 2}, inv.Pending())
}

func TestInvoker_LogsExecuteAndUndo(t *testing.T) {
	var buf bytes.Buffer
	_, inv := newLedgerInvoker(WithLogger(logging.NewStdLoggerTo(&buf, "", logging.DebugLevel)))

	id := inv.AppendCommand(4)
	inv.ExecuteCommand()
	inv.Undo()

	out := buf.String()
	assert.Contains(t, out, "command executed component=command.invoker entry_id="+id.String())
	assert.Contains(t, out, "command undone component=command.invoker entry_id="+id.String())
	assert.Contains(t, out, "pending=0 history=1")
	assert.Contains(t, out, "pending=1 history=0")
}

func TestInvoker_FunctionCommands(t *testing.T) {
	double := funcCommand[ledger]{
		name:     "double",
		execFunc: func(l *ledger) { l.balance *= 2 },
		undoFunc: func(l *ledger) { l.balance /= 2 },
	}
	l := &ledger{balance: 3}
	inv := NewInvoker[ledger, funcCommand[ledger]](l)

	inv.AppendCommand(double)
	inv.AppendCommand(double)
	inv.ExecuteAllCommands()
	assert.Equal(t, 12, l.balance)

	inv.Undo()
	inv.Undo()
	assert.Equal(t, 3, l.balance)
	assert.Equal(t, "double", commandName(double))
	assert.Equal(t, "command.deposit", commandName(deposit(1)))
}
