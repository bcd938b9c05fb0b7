package game

import (
	"fmt"
	"log"

	"github.com/decker502/portfolio/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Theme 页面显示模式
type Theme string

// Language 页面文本语言
type Language string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	LangES Language = "es"
	LangEN Language = "en"
)

// ParseTheme 解析主题字符串，无效值返回 false
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), true
	}
	return "", false
}

// ParseLanguage 解析语言字符串，无效值返回 false
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangES, LangEN:
		return Language(s), true
	}
	return "", false
}

// Preferences 页面偏好设置
// 与原页面的两个 localStorage 键（theme、language）一一对应
type Preferences struct {
	Theme    Theme    `yaml:"theme"`    // 主题：dark / light
	Language Language `yaml:"language"` // 语言：es / en
}

// DefaultPreferences 返回默认偏好：深色主题、西班牙语
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:    ThemeDark,
		Language: LangES,
	}
}

// sanitize 将无效的字段替换为默认值
func (p *Preferences) sanitize() {
	defaults := DefaultPreferences()
	if _, ok := ParseTheme(string(p.Theme)); !ok {
		p.Theme = defaults.Theme
	}
	if _, ok := ParseLanguage(string(p.Language)); !ok {
		p.Language = defaults.Language
	}
}

// SettingsManager 偏好设置管理器
// 负责偏好设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	prefs        *Preferences   // 当前偏好
}

// 存储路径常量
const (
	prefsObject   = "preferences"
	prefsProperty = "page"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方的一致签名，加载失败只记录日志
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenSettingsManager 打开 gdata 存储并创建设置管理器
//
// 存储不可用时退化为仅内存模式，不返回错误
func OpenSettingsManager(appName string) *SettingsManager {
	var manager *gdata.Manager

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: storage dir unavailable: %v", err)
	} else if m, err := gdata.Open(gdata.Config{AppName: appName}); err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (preferences will not persist)", err)
	} else {
		manager = m
		if dir := utils.StoragePath(); dir != "" {
			log.Printf("[SettingsManager] Storage dir: %s", dir)
		}
	}

	sm, _ := NewSettingsManager(manager)
	return sm
}

// Load 从 gdata 加载偏好
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.prefs = DefaultPreferences()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(prefsObject, prefsProperty) {
		sm.prefs = DefaultPreferences()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	// 存储中的无效值（如手工编辑）回退到默认值
	loaded.sanitize()
	sm.prefs = &loaded
	log.Printf("[SettingsManager] Preferences loaded: theme=%s language=%s", loaded.Theme, loaded.Language)
	return nil
}

// Save 保存偏好到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[SettingsManager] Preferences saved")
	return nil
}

// IsPersistent 返回偏好是否会被持久化
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// GetPreferences 获取当前偏好
func (sm *SettingsManager) GetPreferences() *Preferences {
	return sm.prefs
}

// SetTheme 设置主题
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTheme(theme Theme) {
	if _, ok := ParseTheme(string(theme)); ok {
		sm.prefs.Theme = theme
	}
}

// SetLanguage 设置语言
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetLanguage(lang Language) {
	if _, ok := ParseLanguage(string(lang)); ok {
		sm.prefs.Language = lang
	}
}
