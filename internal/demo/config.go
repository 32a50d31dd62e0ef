package demo

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopatterns/errors"
	"gopatterns/logging"
	"gopatterns/patterns/retry"
	"gopatterns/patterns/state"
	"gopatterns/validation"
)

// EnvDiceSeed 骰子随机数种子的环境变量
const EnvDiceSeed = "PATTERNS_DICE_SEED"

// Config 演示配置
type Config struct {
	// Presses 骰子演示的按键次数
	Presses int

	// Seed 随机数种子，HasSeed 为 false 时以时间为种子
	Seed    uint64
	HasSeed bool

	// Retry 随机数源失败时的重试策略
	Retry retry.Config
}

var _ validation.IValidator = Config{}

// DefaultConfig 返回默认配置：12 次按键、时间种子、默认重试
func DefaultConfig() Config {
	return Config{
		Presses: 12,
		Retry:   retry.DefaultConfig(),
	}
}

// LoadFromEnv 从环境变量覆盖配置，lookup 为 nil 时使用 os.LookupEnv
func (c *Config) LoadFromEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	raw, ok := lookup(EnvDiceSeed)
	if !ok || raw == "" {
		return nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return errors.WrapWithLog(context.Background(), err, errors.ErrCodeValidation,
			fmt.Sprintf("%s must be an unsigned integer", EnvDiceSeed),
			logging.String("value", raw))
	}
	c.Seed, c.HasSeed = seed, true
	return nil
}

// Validate 校验配置
func (c Config) Validate() error {
	return validation.ValidateAll(
		func() error { return validation.ValidateIntRange(c.Presses, "presses", 0, 1<<20) },
		c.Retry.Validate,
	)
}

// RandomSource 按配置创建随机数源
func (c Config) RandomSource() state.RandomSource {
	if c.HasSeed {
		return state.NewSeededSource(c.Seed)
	}
	return state.NewRandomSource()
}
