package utils

import (
	"math/rand/v2"
	"time"
)

// Random 模拟层使用的随机源
// 由会话持有并显式传递，固定种子时整局模拟可复现
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom 创建带种子的随机源
// seed 为 0 时使用当前时间
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chance 以概率 p 返回 true
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}

// Spread 返回 [-half, half) 区间内的随机值
func Spread(r Random, half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}

// ChooseWeighted 按权重随机选择下标
// 抽取 [0, total) 的均匀值后沿累积权重查找，总权重非正时返回 0
func ChooseWeighted(r Random, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	roll := r.Float64() * total
	accum := 0.0
	for i, w := range weights {
		accum += w
		if roll < accum {
			return i
		}
	}

	// 浮点累加误差兜底
	return 0
}
