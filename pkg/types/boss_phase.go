package types

// BossPhase 海怪 Boss 的阶段
// 只会单向推进：Entering -> Engaged -> CoreExposed -> Defeated
type BossPhase int

const (
	// BossEntering 从屏幕上方下降入场
	BossEntering BossPhase = iota
	// BossEngaged 触手阶段，核心不可被攻击
	BossEngaged
	// BossCoreExposed 四条触手全部被斩断后核心暴露
	BossCoreExposed
	// BossDefeated 终止状态
	BossDefeated
)

func (p BossPhase) String() string {
	switch p {
	case BossEntering:
		return "entering"
	case BossEngaged:
		return "fighting"
	case BossCoreExposed:
		return "core_exposed"
	case BossDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}
