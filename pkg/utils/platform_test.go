//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 桌面端编译时默认不是移动端
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("PORTFOLIO_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 环境变量强制移动布局
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("PORTFOLIO_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when PORTFOLIO_MOBILE_EMULATE=1")
	}
}
