// Package particlefield 实现页面背景的粒子网络动画
//
// 一个 Field 持有固定数量的粒子，每次 Tick：
//   - 按速度推进粒子位置，越界时反转该轴速度（不夹紧位置）
//   - 绘制粒子圆点
//   - 在距离小于阈值的粒子对之间连线，透明度随距离线性衰减
//   - 指针存在且足够近时，从粒子向指针画高亮线
//
// 颜色每帧根据注入的 ThemeSource 重新计算，Field 本身不缓存主题。
// 所有状态变更（Resize、指针事件）与渲染都在同一逻辑线程上发生，Field 不加锁。
package particlefield

// Config 粒子场配置，在 Field 生命周期内不可变
type Config struct {
	ParticleCount      int     // 粒子数量
	ConnectionDistance float64 // 粒子连线距离阈值
	PointerDistance    float64 // 指针高亮距离阈值
	MaxSpeed           float64 // 每轴速度范围 [-MaxSpeed, MaxSpeed]（单位/帧）
	MinRadius          float64 // 半径下限
	MaxRadius          float64 // 半径上限
}

// DefaultConfig 返回默认配置（60 个粒子，连线与指针阈值均为 150）
func DefaultConfig() Config {
	return Config{
		ParticleCount:      60,
		ConnectionDistance: 150,
		PointerDistance:    150,
		MaxSpeed:           0.25,
		MinRadius:          1,
		MaxRadius:          3,
	}
}

// normalized 修正明显无效的配置值
// 负数量视为 0，半径上下限颠倒时交换
func (c Config) normalized() Config {
	if c.ParticleCount < 0 {
		c.ParticleCount = 0
	}
	if c.MaxSpeed < 0 {
		c.MaxSpeed = -c.MaxSpeed
	}
	if c.MinRadius > c.MaxRadius {
		c.MinRadius, c.MaxRadius = c.MaxRadius, c.MinRadius
	}
	return c
}
