package ecs

import "testing"

// 测试实体定义
type testEntity struct {
	id       int
	ticks    float64
	lifespan float64
	dead     bool
}

func (e *testEntity) Advance(dt float64) {
	e.ticks += dt
	if e.lifespan > 0 && e.ticks >= e.lifespan {
		e.dead = true
	}
}

func (e *testEntity) IsAlive() bool { return !e.dead }

func TestPoolAddAndLen(t *testing.T) {
	p := NewPool[*testEntity](4)
	p.Add(&testEntity{id: 1}, &testEntity{id: 2})
	p.Add(&testEntity{id: 3})

	if p.Len() != 3 {
		t.Errorf("expected 3 entities, got %d", p.Len())
	}
	if p.At(2).id != 3 {
		t.Errorf("expected insertion order to be kept, got id %d at index 2", p.At(2).id)
	}
}

func TestPoolCompactKeepsOrder(t *testing.T) {
	p := NewPool[*testEntity](8)
	for i := 1; i <= 6; i++ {
		p.Add(&testEntity{id: i, dead: i%2 == 0})
	}

	removed := p.Compact()
	if removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}

	want := []int{1, 3, 5}
	if p.Len() != len(want) {
		t.Fatalf("expected %d entities after compact, got %d", len(want), p.Len())
	}
	for i, id := range want {
		if p.At(i).id != id {
			t.Errorf("index %d: expected id %d, got %d", i, id, p.At(i).id)
		}
	}
}

// 连续死亡的实体必须全部被移除，不能因为迭代中修改集合而被跳过
func TestPoolCompactAdjacentDead(t *testing.T) {
	p := NewPool[*testEntity](8)
	p.Add(
		&testEntity{id: 1, dead: true},
		&testEntity{id: 2, dead: true},
		&testEntity{id: 3},
		&testEntity{id: 4, dead: true},
		&testEntity{id: 5, dead: true},
	)

	p.Compact()

	if p.Len() != 1 || p.At(0).id != 3 {
		t.Errorf("expected only entity 3 to remain, got %d entities", p.Len())
	}
}

func TestPoolAdvanceAllSkipsDead(t *testing.T) {
	p := NewPool[*testEntity](4)
	alive := &testEntity{id: 1}
	dead := &testEntity{id: 2, dead: true}
	p.Add(alive, dead)

	p.AdvanceAll(1)

	if alive.ticks != 1 {
		t.Errorf("expected alive entity to advance, got ticks=%f", alive.ticks)
	}
	if dead.ticks != 0 {
		t.Errorf("dead entity should not advance, got ticks=%f", dead.ticks)
	}
}

func TestPoolUpdateRemovesExpired(t *testing.T) {
	p := NewPool[*testEntity](4)
	p.Add(&testEntity{id: 1, lifespan: 2}, &testEntity{id: 2, lifespan: 5})

	p.Update(1)
	if p.Len() != 2 {
		t.Fatalf("expected 2 entities after first update, got %d", p.Len())
	}

	removed := p.Update(1)
	if removed != 1 {
		t.Errorf("expected 1 entity removed, got %d", removed)
	}
	if p.Len() != 1 || p.At(0).id != 2 {
		t.Errorf("expected entity 2 to remain")
	}
}

func TestPoolCountAliveAndClear(t *testing.T) {
	p := NewPool[*testEntity](4)
	p.Add(&testEntity{id: 1}, &testEntity{id: 2, dead: true}, &testEntity{id: 3})

	if got := p.CountAlive(); got != 2 {
		t.Errorf("expected 2 alive, got %d", got)
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("expected empty pool after clear, got %d", p.Len())
	}
}
