package game

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/portfolio/pkg/embedded"
)

const testStrings = `# navigation
[NAV_HOME]
en: Home
es: Inicio

[TOAST_EMAIL_COPIED]
en: Email copied!
es: ¡Email copiado!

[ONLY_EN]
en: Only English

[EMPTY]

stray line without key
[HERO_TITLE]
es: Hola: soy ingeniero
`

// TestStrings_Get 验证文本获取
func TestStrings_Get(t *testing.T) {
	s, err := ParseStrings(strings.NewReader(testStrings))
	if err != nil {
		t.Fatalf("ParseStrings() error: %v", err)
	}

	tests := []struct {
		lang Language
		key  string
		want string
	}{
		{LangEN, "NAV_HOME", "Home"},
		{LangES, "NAV_HOME", "Inicio"},
		{LangES, "TOAST_EMAIL_COPIED", "¡Email copiado!"},
		{LangES, "ONLY_EN", "Only English"},           // 缺失语言回退
		{LangEN, "HERO_TITLE", "Hola: soy ingeniero"}, // 文本中的冒号保留
		{LangEN, "MISSING", "[MISSING]"},
		{LangEN, "EMPTY", "[EMPTY]"},
	}

	for _, tt := range tests {
		if got := s.Get(tt.lang, tt.key); got != tt.want {
			t.Errorf("Get(%s, %s) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}

	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if !s.Has("EMPTY") || s.Has("MISSING") {
		t.Error("Has() mismatch")
	}
}

// TestStrings_LoadEmbedded 验证项目自带的 strings.txt 可加载且双语完整
func TestStrings_LoadEmbedded(t *testing.T) {
	data, err := os.ReadFile("../../data/strings.txt")
	if os.IsNotExist(err) {
		t.Skip("Skipping test: data/strings.txt not found")
	}
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	embedded.Init(fstest.MapFS{"data/strings.txt": {Data: data}})
	defer embedded.Init(nil)

	s, err := NewStrings(DefaultStringsPath)
	if err != nil {
		t.Fatalf("NewStrings() error: %v", err)
	}

	for key, texts := range s.strings {
		if _, ok := texts[LangEN]; !ok {
			t.Errorf("key %s missing en text", key)
		}
		if _, ok := texts[LangES]; !ok {
			t.Errorf("key %s missing es text", key)
		}
	}
	t.Logf("Loaded %d strings from strings.txt", s.Len())
}

// TestStrings_NotInitialized 未初始化嵌入资源时返回错误
func TestStrings_NotInitialized(t *testing.T) {
	embedded.Init(nil)
	if _, err := NewStrings(DefaultStringsPath); err == nil {
		t.Error("NewStrings() should fail when embedded is not initialized")
	}
}
