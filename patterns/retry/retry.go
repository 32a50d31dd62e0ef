// Package retry 提供带指数退避的有界重试
//
// 重试是调用方自定义的恢复策略：操作本身必须在失败时保持状态不变，
// 这样重新执行才等价于"再试一次同一步"。
package retry

import (
	"context"
	"fmt"
	"time"

	"gopatterns/errors"
	"gopatterns/validation"
)

// Operation 可重试的操作函数类型，attempt 从 1 开始
type Operation func(ctx context.Context, attempt int) error

// Config 重试配置
type Config struct {
	MaxAttempts   int           // 最大尝试次数（包括首次）
	InitialDelay  time.Duration // 初始退避延迟
	BackoffFactor float64       // 退避倍数（指数退避）
	MaxDelay      time.Duration // 最大延迟

	// Retryable 判断错误是否值得重试，nil 表示全部重试
	Retryable func(err error) bool

	// OnRetry 在每次等待前回调（可选）
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultConfig 返回默认配置
//
// 默认值：
//   - MaxAttempts: 3（1次初始 + 2次重试）
//   - InitialDelay: 2ms
//   - BackoffFactor: 2.0
//   - MaxDelay: 100ms
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   3,
		InitialDelay:  2 * time.Millisecond,
		BackoffFactor: 2.0,
		MaxDelay:      100 * time.Millisecond,
	}
}

// Validate 校验配置
func (c Config) Validate() error {
	return validation.ValidateAll(
		func() error { return validation.ValidatePositive(c.MaxAttempts, "retry.max_attempts") },
		func() error {
			if c.BackoffFactor < 1 {
				return errors.NewValidationError(fmt.Sprintf("retry.backoff_factor must be >= 1 (got %g)", c.BackoffFactor))
			}
			return nil
		},
	)
}

// Do 执行带重试的操作
//
// 返回 nil（任意一次成功）、最后一次的错误、不可重试的错误，
// 或者等待期间上下文被取消时的 ctx.Err()。
//
//	err := retry.Do(ctx, func(ctx context.Context, attempt int) error {
//	    _, err := dice.PressButton()
//	    return err
//	}, retry.DefaultConfig())
func Do(ctx context.Context, op Operation, cfg Config) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if cfg.Retryable != nil && !cfg.Retryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := delay
		if cfg.MaxDelay > 0 && wait > cfg.MaxDelay {
			wait = cfg.MaxDelay
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
	}

	return lastErr
}
