// Package config 提供应用配置的加载、校验与保存
//
// 加载顺序：DefaultConfig() -> YAML 配置文件（可选）-> PORTFOLIO_ 环境变量。
// 嵌套字段在环境变量中用双下划线分隔，例如 PORTFOLIO_FIELD__PARTICLE_COUNT=80。
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/decker502/portfolio/pkg/particlefield"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "PORTFOLIO_"

// Config 应用配置
type Config struct {
	AppName  string         `yaml:"app_name" koanf:"app_name"` // gdata 存储使用的应用名
	Window   WindowConfig   `yaml:"window" koanf:"window"`
	Field    FieldConfig    `yaml:"field" koanf:"field"`
	Palette  PaletteConfig  `yaml:"palette" koanf:"palette"`
	Terminal TerminalConfig `yaml:"terminal" koanf:"terminal"`
	Profile  ProfileConfig  `yaml:"profile" koanf:"profile"`
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width" koanf:"width"`
	Height     int    `yaml:"height" koanf:"height"`
	Title      string `yaml:"title" koanf:"title"`
	Fullscreen bool   `yaml:"fullscreen" koanf:"fullscreen"`
}

// FieldConfig 粒子场配置
type FieldConfig struct {
	ParticleCount      int     `yaml:"particle_count" koanf:"particle_count"`
	ConnectionDistance float64 `yaml:"connection_distance" koanf:"connection_distance"`
	PointerDistance    float64 `yaml:"pointer_distance" koanf:"pointer_distance"`
	MaxSpeed           float64 `yaml:"max_speed" koanf:"max_speed"`
	MinRadius          float64 `yaml:"min_radius" koanf:"min_radius"`
	MaxRadius          float64 `yaml:"max_radius" koanf:"max_radius"`
}

// PaletteConfig 主题色（十六进制，如 "#00d4ff"）
type PaletteConfig struct {
	Dark  string `yaml:"dark" koanf:"dark"`
	Light string `yaml:"light" koanf:"light"`
}

// TerminalConfig 终端模式配置
// 终端坐标以字符为单位，因此距离阈值与粒子数量需要单独设置
type TerminalConfig struct {
	FPS   int         `yaml:"fps" koanf:"fps"`
	Field FieldConfig `yaml:"field" koanf:"field"`
}

// ProfileConfig 页面展示的个人信息
type ProfileConfig struct {
	Name  string `yaml:"name" koanf:"name"`
	Email string `yaml:"email" koanf:"email"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		AppName: "portfolio",
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Portfolio",
		},
		Field: FieldConfig{
			ParticleCount:      60,
			ConnectionDistance: 150,
			PointerDistance:    150,
			MaxSpeed:           0.25,
			MinRadius:          1,
			MaxRadius:          3,
		},
		Palette: PaletteConfig{
			Dark:  "#00d4ff",
			Light: "#0077cc",
		},
		Terminal: TerminalConfig{
			FPS: 30,
			Field: FieldConfig{
				ParticleCount:      40,
				ConnectionDistance: 14,
				PointerDistance:    16,
				MaxSpeed:           0.25,
				MinRadius:          0.5,
				MaxRadius:          1.5,
			},
		},
		Profile: ProfileConfig{
			Name:  "Your Name",
			Email: "hello@example.com",
		},
	}
}

// Load 读取配置：默认值 -> YAML 文件（存在时）-> 环境变量覆盖
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_FIELD__PARTICLE_COUNT -> field.particle_count
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save 将配置写入 YAML 文件
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("app_name is required")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Field.validate("field"); err != nil {
		return err
	}
	if err := c.Terminal.Field.validate("terminal.field"); err != nil {
		return err
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal.fps must be positive")
	}
	if _, err := c.Palette.Parse(); err != nil {
		return err
	}
	return nil
}

func (f FieldConfig) validate(name string) error {
	if f.ParticleCount < 0 {
		return fmt.Errorf("%s.particle_count must be non-negative", name)
	}
	if f.ConnectionDistance < 0 || f.PointerDistance < 0 {
		return fmt.Errorf("%s distances must be non-negative", name)
	}
	if f.MaxSpeed < 0 {
		return fmt.Errorf("%s.max_speed must be non-negative", name)
	}
	if f.MinRadius <= 0 || f.MaxRadius < f.MinRadius {
		return fmt.Errorf("%s radius range [%v, %v] is invalid", name, f.MinRadius, f.MaxRadius)
	}
	return nil
}

// ParticleField 转换为粒子场配置
func (f FieldConfig) ParticleField() particlefield.Config {
	return particlefield.Config{
		ParticleCount:      f.ParticleCount,
		ConnectionDistance: f.ConnectionDistance,
		PointerDistance:    f.PointerDistance,
		MaxSpeed:           f.MaxSpeed,
		MinRadius:          f.MinRadius,
		MaxRadius:          f.MaxRadius,
	}
}

// Parse 解析十六进制主题色
func (p PaletteConfig) Parse() (particlefield.Palette, error) {
	dark, err := parseHex(p.Dark)
	if err != nil {
		return particlefield.Palette{}, fmt.Errorf("palette.dark: %w", err)
	}
	light, err := parseHex(p.Light)
	if err != nil {
		return particlefield.Palette{}, fmt.Errorf("palette.light: %w", err)
	}
	return particlefield.Palette{Dark: dark, Light: light}, nil
}

func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
