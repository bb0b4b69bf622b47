package entities

import "github.com/gonewx/arrowfish/pkg/config"

// sequenceRandom 按顺序循环返回预设值的随机源
type sequenceRandom struct {
	values []float64
	next   int
}

func newSequenceRandom(values ...float64) *sequenceRandom {
	return &sequenceRandom{values: values}
}

func (r *sequenceRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func (r *sequenceRandom) IntN(n int) int {
	return int(r.Float64() * float64(n))
}

// fishDef 返回默认配置中指定 ID 的鱼
func fishDef(cfg *config.GameplayConfig, id int) config.FishTypeConfig {
	for _, ft := range cfg.FishTypes {
		if ft.ID == id {
			return ft
		}
	}
	panic("unknown fish id")
}
