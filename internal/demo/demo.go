// Package demo 驱动三个模式的演示流程，输出写入调用方提供的 io.Writer。
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopatterns/errors"
	"gopatterns/logging"
	"gopatterns/patterns/command"
	"gopatterns/patterns/command/robot"
	"gopatterns/patterns/factory"
	"gopatterns/patterns/retry"
	"gopatterns/patterns/state"
)

// RunCommand 机器人命令演示：右转、左转、前进，全部执行后撤销两次
//
// 每一步打印机器人状态，并与期望值比对。
func RunCommand(w io.Writer, logger logging.Logger) error {
	r := robot.New()
	inv := robot.NewInvoker(&r, command.WithLogger(orGlobal(logger)))

	steps := []struct {
		name string
		run  func()
		want robot.Robot
	}{
		{name: "initial", run: func() {}, want: robot.Robot{X: 0, Y: 0, DX: 0, DY: 1}},
		{name: "execute_all", run: func() {
			inv.AppendCommand(robot.TurnRight)
			inv.AppendCommand(robot.TurnLeft)
			inv.AppendCommand(robot.MoveForward)
			inv.ExecuteAllCommands()
		}, want: robot.Robot{X: 0, Y: 1, DX: 0, DY: 1}},
		{name: "undo", run: func() { inv.Undo() }, want: robot.Robot{X: 0, Y: 0, DX: 0, DY: 1}},
		{name: "undo", run: func() { inv.Undo() }, want: robot.Robot{X: 0, Y: 0, DX: 1, DY: 0}},
	}

	for _, step := range steps {
		step.run()
		got := inv.Target()
		fmt.Fprintf(w, "%-11s %s\n", step.name+":", got)
		if got != step.want {
			return errors.NewError(errors.ErrCodeInternal,
				fmt.Sprintf("%s: robot is %s, want %s", step.name, got, step.want))
		}
	}
	return nil
}

// RunState 骰子演示：从新上下文开始按 cfg.Presses 次按钮
//
// 每次按键包在 retry.Do 中；随机数源失败时状态不变，重试即重按同一步。
func RunState(ctx context.Context, w io.Writer, cfg Config, rng state.RandomSource, logger logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger = orGlobal(logger)

	dice, err := state.NewContext(rng, state.WithOutput(w), state.WithLogger(logger))
	if err != nil {
		return err
	}

	policy := cfg.Retry
	policy.Retryable = errors.IsDependency
	// 失败原因已由骰子上下文记录，这里只记重试节奏
	policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		fields := []logging.Field{
			logging.Int("attempt", attempt),
			logging.String("delay", delay.String()),
		}
		if details := errors.DetailsOf(err); details != nil {
			fields = append(fields, logging.Any("details", details))
		}
		logger.Debug(ctx, "retrying press", fields...)
	}

	for i := 0; i < cfg.Presses; i++ {
		err := retry.Do(ctx, func(ctx context.Context, attempt int) error {
			_, err := dice.PressButton()
			return err
		}, policy)
		if err != nil {
			return errors.Wrap(ctx, err, errors.GetErrorCode(err),
				fmt.Sprintf("press %d of %d", i+1, cfg.Presses))
		}
	}

	logger.Info(ctx, "dice demo finished",
		logging.Int("presses", dice.Presses()),
		logging.Stringer("state", dice.State()),
	)
	return nil
}

// DefaultFactoryIDs 演示默认依次使用的工厂
var DefaultFactoryIDs = []factory.FactoryID{factory.FactoryA, factory.FactoryB}

// RunFactory 抽象工厂演示：按 ids 顺序输出每个工厂的 X 与 Y 产品
func RunFactory(w io.Writer, ids ...factory.FactoryID) error {
	if len(ids) == 0 {
		ids = DefaultFactoryIDs
	}
	for _, id := range ids {
		f, err := factory.CreateFactory(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, f.CreateProductX().Value())
		fmt.Fprintln(w, f.CreateProductY().Value())
	}
	return nil
}

func orGlobal(logger logging.Logger) logging.Logger {
	if logger == nil {
		return logging.GetLogger()
	}
	return logger
}
