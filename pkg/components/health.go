package components

// HealthComponent 存储可被攻击实体的生命值
// 用于鱼和 Boss 触手
type HealthComponent struct {
	CurrentHealth int // 当前生命值，击杀后可能为负，计分逻辑不读取负值
	MaxHealth     int // 最大生命值
}

// NewHealth 创建满血的生命值组件
func NewHealth(hp int) HealthComponent {
	return HealthComponent{CurrentHealth: hp, MaxHealth: hp}
}

// TakeDamage 扣除生命值，返回是否降到 0 及以下
func (h *HealthComponent) TakeDamage(damage int) bool {
	h.CurrentHealth -= damage
	return h.CurrentHealth <= 0
}

// Depleted 生命值是否已耗尽
func (h *HealthComponent) Depleted() bool {
	return h.CurrentHealth <= 0
}

// Ratio 当前生命比例（截断到 [0, 1]）
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 || h.CurrentHealth <= 0 {
		return 0
	}
	if h.CurrentHealth >= h.MaxHealth {
		return 1
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
