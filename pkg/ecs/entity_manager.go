// Package ecs 提供模拟实体的存储与回收
//
// 每类实体保存在独立的 Pool 中，更新阶段只设置死亡标记，
// 由 Compact 统一回收，避免在迭代过程中修改集合导致跳过或重复处理。
package ecs

// Entity 是所有模拟实体共享的最小能力契约
type Entity interface {
	// Advance 推进一帧，dt 以帧为单位（固定步长下为 1）
	Advance(dt float64)
	// IsAlive 实体是否仍然存活
	IsAlive() bool
}

// Pool 按插入顺序保存同一类实体
type Pool[T Entity] struct {
	items []T
}

// NewPool 创建指定初始容量的实体池
func NewPool[T Entity](capacity int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, capacity),
	}
}

// Add 追加实体
func (p *Pool[T]) Add(items ...T) {
	p.items = append(p.items, items...)
}

// Len 返回池中实体数量（包含尚未回收的死亡实体）
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// At 返回下标 i 处的实体
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Items 返回底层切片，调用方只能读取或修改元素，不能追加
func (p *Pool[T]) Items() []T {
	return p.items
}

// AdvanceAll 推进所有存活实体
// 迭代范围在开始时固定，本帧 Advance 过程中新加入的实体留到下一帧
func (p *Pool[T]) AdvanceAll(dt float64) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.items[i].IsAlive() {
			p.items[i].Advance(dt)
		}
	}
}

// Compact 移除所有死亡实体并保持剩余实体的相对顺序
//
// 返回：
//   - int: 本次移除的实体数量
func (p *Pool[T]) Compact() int {
	kept := p.items[:0]
	for _, item := range p.items {
		if item.IsAlive() {
			kept = append(kept, item)
		}
	}

	removed := len(p.items) - len(kept)

	// 清空尾部引用，便于 GC 回收
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept

	return removed
}

// Update 推进并回收，等价于 AdvanceAll + Compact
func (p *Pool[T]) Update(dt float64) int {
	p.AdvanceAll(dt)
	return p.Compact()
}

// CountAlive 统计存活实体数量
func (p *Pool[T]) CountAlive() int {
	count := 0
	for _, item := range p.items {
		if item.IsAlive() {
			count++
		}
	}
	return count
}

// Clear 清空实体池
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
}
