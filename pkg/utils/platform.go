//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 设置环境变量 PORTFOLIO_MOBILE_EMULATE=1 可在桌面端使用移动布局（汉堡菜单、触摸滚动）
func IsMobile() bool {
	return os.Getenv("PORTFOLIO_MOBILE_EMULATE") == "1"
}
