package config

// 布局配置常量
// 本文件定义了页面场景中的布局与交互参数（单位：像素 / 秒）

// 导航栏
const (
	// NavbarHeight 固定导航栏高度
	NavbarHeight = 64.0

	// NavScrollOffset 点击导航链接时目标位置的上移量（为固定导航栏留出空间）
	NavScrollOffset = 80.0

	// NavShadowThreshold 滚动超过该值时导航栏显示阴影
	NavShadowThreshold = 50.0

	// ActiveSectionOffset 计算当前激活区块时加到滚动位置上的偏移
	ActiveSectionOffset = 200.0

	// MobileBreakpoint 窗口宽度小于该值时导航链接折叠到菜单按钮后面
	MobileBreakpoint = 768
)

// 滚动
const (
	// WheelScrollStep 鼠标滚轮每格滚动距离
	WheelScrollStep = 60.0

	// SmoothScrollDuration 点击导航链接后的平滑滚动时长
	SmoothScrollDuration = 0.6
)

// 进入视口动画
const (
	// RevealThreshold 元素可见部分占自身高度的比例达到该值时触发
	RevealThreshold = 0.1

	// RevealBottomMargin 视口底部向内收缩的距离（对应 rootMargin 的 -100px）
	RevealBottomMargin = 100.0

	// RevealDistance 未显示时元素向下偏移的距离
	RevealDistance = 20.0

	// RevealDuration 淡入时长
	RevealDuration = 0.6
)

// 页面加载淡入
const (
	PageFadeDelay    = 0.1
	PageFadeDuration = 0.5
)

// 项目卡片悬停倾斜
const (
	// TiltDivisor 指针偏离卡片中心的像素数除以该值得到倾斜角度（度）
	TiltDivisor = 20.0

	// TiltLift 悬停时卡片上移距离
	TiltLift = 8.0
)

// 复制邮箱提示
const (
	ToastDuration     = 2.0
	ToastFadeDuration = 0.3
	ToastMargin       = 20.0
)

// 区块布局
const (
	SectionPaddingX   = 48.0
	SectionPaddingY   = 96.0
	SectionMinHeight  = 480.0
	CardGap           = 24.0
	CardHeight        = 180.0
	StatCardHeight    = 110.0
	SkillCardHeight   = 90.0
	ContentMaxWidth   = 1100.0
	TitleFontSize     = 36.0
	BodyFontSize      = 18.0
	SmallFontSize     = 14.0
	NavLinkSpacing    = 28.0
	NavLinkFontSize   = 16.0
	MobileMenuItemGap = 44.0
)
