package game

import "container/heap"

// scheduledEvent 一个延迟执行的回调
type scheduledEvent struct {
	due int    // 到期帧
	seq uint64 // 同一帧内按加入顺序执行
	fn  func()
}

type eventQueue []*scheduledEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*scheduledEvent)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Scheduler 按帧计时的延迟事件队列
//
// 所有延迟逻辑（Boss 谢幕的连环爆炸、延迟结束）都放入队列，
// 由模拟在每帧开始时调用 RunDue 执行，不使用独立的计时器。
// 给定相同的帧序列，执行顺序完全确定。
type Scheduler struct {
	queue eventQueue
	seq   uint64
	now   int
}

// NewScheduler 创建空队列
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 在当前帧之后 delay 帧执行 fn
// delay <= 0 的事件在下一次 RunDue 时执行
func (s *Scheduler) After(delay int, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &scheduledEvent{due: s.now + delay, seq: s.seq, fn: fn})
}

// RunDue 将时钟推进到 now，并执行所有到期的事件
//
// 返回:
//   - int: 本次执行的事件数
func (s *Scheduler) RunDue(now int) int {
	s.now = now
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= now {
		ev := heap.Pop(&s.queue).(*scheduledEvent)
		ev.fn()
		ran++
	}
	return ran
}

// Now 当前帧
func (s *Scheduler) Now() int {
	return s.now
}

// Len 待执行事件数
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Clear 丢弃所有待执行事件，时钟归零
func (s *Scheduler) Clear() {
	for i := range s.queue {
		s.queue[i] = nil
	}
	s.queue = s.queue[:0]
	s.now = 0
}
