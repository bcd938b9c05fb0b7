package config

import (
	"testing"
)

// TestNavConstants 导航相关常量之间的约束
func TestNavConstants(t *testing.T) {
	if NavScrollOffset < NavbarHeight {
		t.Errorf("NavScrollOffset = %.0f, want >= NavbarHeight (%.0f)", NavScrollOffset, NavbarHeight)
	}
	if ActiveSectionOffset <= NavScrollOffset {
		t.Errorf("ActiveSectionOffset = %.0f, want > NavScrollOffset (%.0f)", ActiveSectionOffset, NavScrollOffset)
	}
	if MobileBreakpoint != 768 {
		t.Errorf("MobileBreakpoint = %d, want 768", MobileBreakpoint)
	}
}

// TestRevealConstants 进入视口动画参数范围
func TestRevealConstants(t *testing.T) {
	if RevealThreshold <= 0 || RevealThreshold > 1 {
		t.Errorf("RevealThreshold = %v, want (0, 1]", RevealThreshold)
	}
	if RevealDuration <= 0 || PageFadeDuration <= 0 {
		t.Error("fade durations must be positive")
	}
}

// TestToastTiming 淡入淡出时长之和不超过提示总时长
func TestToastTiming(t *testing.T) {
	if 2*ToastFadeDuration >= ToastDuration {
		t.Errorf("2*ToastFadeDuration (%.1f) must be < ToastDuration (%.1f)", 2*ToastFadeDuration, ToastDuration)
	}
}
