package embedded

import (
	"testing"
	"testing/fstest"
)

// resetEmbedded 重置包状态以避免影响其他测试
func resetEmbedded(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetEmbedded(t)
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestOpenNotInitialized 测试未初始化时调用 Open
func TestOpenNotInitialized(t *testing.T) {
	resetEmbedded(t)
	initialized = false

	_, err := Open("data/strings.txt")
	if err == nil {
		t.Fatal("Expected error when calling Open() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试路径标准化与读取
func TestReadFile(t *testing.T) {
	resetEmbedded(t)
	Init(fstest.MapFS{
		"data/strings.txt": {Data: []byte("[NAV_HOME]\nen: Home\n")},
	})

	for _, path := range []string{"data/strings.txt", "./data/strings.txt"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Errorf("ReadFile(%q) error: %v", path, err)
			continue
		}
		if string(data) != "[NAV_HOME]\nen: Home\n" {
			t.Errorf("ReadFile(%q) = %q", path, data)
		}
	}

	if !Exists("data/strings.txt") {
		t.Error("Exists(data/strings.txt) should be true")
	}
	if Exists("data/missing.txt") {
		t.Error("Exists(data/missing.txt) should be false")
	}
}

// TestUnknownPrefix 测试非法路径前缀
func TestUnknownPrefix(t *testing.T) {
	resetEmbedded(t)
	Init(fstest.MapFS{})

	if _, err := ReadFile("assets/logo.png"); err == nil {
		t.Error("Expected error for path without data/ prefix")
	}
}
