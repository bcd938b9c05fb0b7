package game

import (
	"log"
	"sync"
)

// PageState 页面级共享状态
//
// 替代原页面中的全局变量（当前主题、当前语言、上次滚动位置），
// 由调用方显式创建并传递。主题与语言的修改会通过 SettingsManager 持久化。
//
// 终端模式下输入事件在独立 goroutine 中处理，因此所有访问都加锁。
type PageState struct {
	mu       sync.RWMutex
	settings *SettingsManager // 可为 nil，此时修改不会持久化

	theme    Theme
	language Language

	scrollY     float64 // 当前滚动位置
	lastScrollY float64 // 上一次滚动位置
}

// NewPageState 创建页面状态，初始主题与语言取自已保存的偏好
func NewPageState(settings *SettingsManager) *PageState {
	prefs := DefaultPreferences()
	if settings != nil {
		prefs = settings.GetPreferences()
	}
	return &PageState{
		settings: settings,
		theme:    prefs.Theme,
		language: prefs.Language,
	}
}

// Theme 返回当前主题
func (ps *PageState) Theme() Theme {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.theme
}

// IsDark 返回是否为深色主题（满足 particlefield.ThemeSource）
func (ps *PageState) IsDark() bool {
	return ps.Theme() == ThemeDark
}

// SetTheme 设置主题并持久化，非法值被忽略
func (ps *PageState) SetTheme(theme Theme) {
	if _, ok := ParseTheme(string(theme)); !ok {
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.theme = theme
	if ps.settings != nil {
		ps.settings.SetTheme(theme)
		ps.persist()
	}
}

// ToggleTheme 在深色与浅色之间切换，返回切换后的主题
func (ps *PageState) ToggleTheme() Theme {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	next := ThemeDark
	if ps.theme == ThemeDark {
		next = ThemeLight
	}
	ps.theme = next
	if ps.settings != nil {
		ps.settings.SetTheme(next)
		ps.persist()
	}
	return next
}

// Language 返回当前语言
func (ps *PageState) Language() Language {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.language
}

// SetLanguage 设置语言并持久化
//
// 返回：
//   - bool: 语言是否发生变化（选择当前语言或非法值返回 false）
func (ps *PageState) SetLanguage(lang Language) bool {
	if _, ok := ParseLanguage(string(lang)); !ok {
		return false
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.language == lang {
		return false
	}
	ps.language = lang
	if ps.settings != nil {
		ps.settings.SetLanguage(lang)
		ps.persist()
	}
	return true
}

// ScrollY 返回当前滚动位置
func (ps *PageState) ScrollY() float64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.scrollY
}

// LastScrollY 返回上一次滚动位置
func (ps *PageState) LastScrollY() float64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.lastScrollY
}

// SetScrollY 更新滚动位置，负值按 0 处理
func (ps *PageState) SetScrollY(y float64) {
	if y < 0 {
		y = 0
	}
	ps.mu.Lock()
	ps.lastScrollY = ps.scrollY
	ps.scrollY = y
	ps.mu.Unlock()
}

// persist 调用方需持有写锁
func (ps *PageState) persist() {
	if err := ps.settings.Save(); err != nil {
		log.Printf("[PageState] Warning: failed to save preferences: %v", err)
	}
}
