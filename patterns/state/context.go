package state

import (
	"context"
	"fmt"
	"io"

	"gopatterns/errors"
	"gopatterns/logging"
)

type options struct {
	out    io.Writer
	logger logging.Logger
}

// Option 骰子上下文选项
type Option func(*options)

// WithOutput 每条消息以一行写入 w
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger 设置日志器
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Context 骰子上下文，持有当前状态
type Context struct {
	state     State
	rng       RandomSource
	out       io.Writer
	logger    logging.Logger
	presses   int
	lastValue int
	hasValue  bool
}

// NewContext 创建处于 Off 状态的骰子
//
// rng 为 nil 时返回 ErrCodeDependency 错误。
func NewContext(rng RandomSource, opts ...Option) (*Context, error) {
	if rng == nil {
		return nil, errors.NewError(errors.ErrCodeDependency, "random source is required")
	}

	o := options{out: io.Discard, logger: logging.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.out == nil {
		o.out = io.Discard
	}

	return &Context{
		state:  Off,
		rng:    rng,
		out:    o.out,
		logger: o.logger.WithFields(logging.String("component", "state.dice")),
	}, nil
}

// State 当前状态
func (c *Context) State() State { return c.state }

// Presses 成功的按键次数
func (c *Context) Presses() int { return c.presses }

// LastValue 最近一次掷出的点数
func (c *Context) LastValue() (int, bool) { return c.lastValue, c.hasValue }

// PressButton 按下按钮：输出当前状态的消息并前进到后继状态
//
// 在 Stop 状态下随机数源失败时返回错误，状态保持 Stop 且不输出消息，
// 因此重新按下即重试同一步。
func (c *Context) PressButton() (string, error) {
	from := c.state

	msg, err := c.transitionMessage(from)
	if err != nil {
		return "", err
	}

	c.state = from.Next()
	c.presses++

	if _, err := fmt.Fprintln(c.out, msg); err != nil {
		c.logger.Warn(context.Background(), "write message failed", logging.Error(err))
	}
	c.logger.Debug(context.Background(), "button pressed",
		logging.Stringer("from", from),
		logging.Stringer("to", c.state),
		logging.Int("presses", c.presses),
	)
	return msg, nil
}

func (c *Context) transitionMessage(s State) (string, error) {
	switch s {
	case Off:
		return MessagePowerOn, nil
	case On:
		return MessageShaking, nil
	case Stop:
		n, err := c.rng.IntRange(FaceMin, FaceMax)
		if err != nil {
			c.logger.Warn(context.Background(), "random source failed",
				logging.Error(err), logging.Stringer("state", s))
			return "", errors.WrapError(err, errors.ErrCodeDependency, "random source failed")
		}
		if n < FaceMin || n >= FaceMax {
			outOfRange := errors.NewError(errors.ErrCodeDependency,
				fmt.Sprintf("random source returned a value outside [%d, %d)", FaceMin, FaceMax)).
				WithContext("value", n)
			c.logger.Warn(context.Background(), "random source out of range", logging.Int("value", n))
			return "", outOfRange
		}
		c.lastValue, c.hasValue = n, true
		return PowerOffMessage(n), nil
	default:
		panic(fmt.Sprintf("state: unknown state %d", int(s)))
	}
}
