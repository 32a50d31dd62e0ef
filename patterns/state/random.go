package state

import (
	"math/rand/v2"
	"time"
)

// RandomSource 外部注入的随机数源
//
// IntRange 返回 [min, max) 内的整数；失败时返回错误。
type RandomSource interface {
	IntRange(min, max int) (int, error)
}

// RandomSourceFunc 函数适配器
type RandomSourceFunc func(min, max int) (int, error)

func (f RandomSourceFunc) IntRange(min, max int) (int, error) { return f(min, max) }

// PCGSource 基于 math/rand/v2 PCG 的随机数源，不可并发使用
type PCGSource struct {
	rng *rand.Rand
}

// NewSeededSource 创建固定种子的随机数源，同一种子产生同一序列
func NewSeededSource(seed uint64) *PCGSource {
	return &PCGSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource 以当前时间为种子创建随机数源
func NewRandomSource() *PCGSource {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

func (s *PCGSource) IntRange(min, max int) (int, error) {
	return min + s.rng.IntN(max-min), nil
}
