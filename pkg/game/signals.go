package game

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// SignalKind 会话向外广播的事件类型
type SignalKind int

const (
	SignalScreenShake SignalKind = iota
	SignalFeverStarted
	SignalFeverEnded
	// SignalFeverBlocked 连击达到阈值但 Boss 处于触手阶段，连击被清零
	SignalFeverBlocked
	SignalBossSpawned
	SignalBossEngaged
	SignalCoreExposed
	SignalTentacleDestroyed
	SignalCoreHit
	SignalBossDefeated
	SignalPowerUpGranted
	SignalFishKilled
	SignalHazardExploded
	SignalProjectileFired
	SignalSessionStarted
	SignalSessionEnded
)

var signalNames = [...]string{
	SignalScreenShake:       "screen_shake",
	SignalFeverStarted:      "fever_started",
	SignalFeverEnded:        "fever_ended",
	SignalFeverBlocked:      "fever_blocked",
	SignalBossSpawned:       "boss_spawned",
	SignalBossEngaged:       "boss_engaged",
	SignalCoreExposed:       "core_exposed",
	SignalTentacleDestroyed: "tentacle_destroyed",
	SignalCoreHit:           "core_hit",
	SignalBossDefeated:      "boss_defeated",
	SignalPowerUpGranted:    "power_up_granted",
	SignalFishKilled:        "fish_killed",
	SignalHazardExploded:    "hazard_exploded",
	SignalProjectileFired:   "projectile_fired",
	SignalSessionStarted:    "session_started",
	SignalSessionEnded:      "session_ended",
}

func (k SignalKind) String() string {
	if k >= 0 && int(k) < len(signalNames) {
		return signalNames[k]
	}
	return "unknown"
}

// Signal 一次事件
// Value 的含义取决于类型：震动强度、得分、击杀数等
type Signal struct {
	Kind  SignalKind
	X, Y  float64
	Value float64
}

// Listener 事件订阅者（音效、日志、测试）
type Listener interface {
	OnSignal(signal Signal)
}

// ListenerFunc 将普通函数适配为 Listener
// 函数值不可比较，通过 ListenerFunc 订阅的监听者不能 Unsubscribe
type ListenerFunc func(signal Signal)

func (f ListenerFunc) OnSignal(signal Signal) { f(signal) }

// Dispatcher 事件分发器
// 订阅者在模拟线程内同步调用，不得在回调中阻塞
type Dispatcher struct {
	listeners map[SignalKind][]Listener
	wildcard  []Listener
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[SignalKind][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(kind SignalKind, listener Listener) {
	d.listeners[kind] = append(d.listeners[kind], listener)
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.wildcard = append(d.wildcard, listener)
}

// Unsubscribe 取消订阅指定类型的事件
func (d *Dispatcher) Unsubscribe(kind SignalKind, listener Listener) {
	listeners := d.listeners[kind]
	for i, l := range listeners {
		if l == listener {
			d.listeners[kind] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch 同步通知订阅者，先按类型订阅者，再通知全量订阅者
func (d *Dispatcher) Dispatch(signal Signal) {
	for _, l := range d.listeners[signal.Kind] {
		l.OnSignal(signal)
	}
	for _, l := range d.wildcard {
		l.OnSignal(signal)
	}
}
