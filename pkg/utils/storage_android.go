//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 偏好存储目录存在并可写
// gdata 在 Android 上写入 /data/data/{package}/ 下，但不会预先创建子目录，
// 必须在 gdata.Open 之前调用。
//
// 返回：
//   - error: 无法确定包名或目录不可写时返回错误
func EnsureStorageDir() error {
	dir, err := androidStorageDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoragePath 返回 Android 存储路径，失败时返回空字符串
func StoragePath() string {
	dir, err := androidStorageDir()
	if err != nil {
		return ""
	}
	return dir
}

func androidStorageDir() (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}
	return filepath.Join("/data/data", pkg, "preferences"), nil
}

// androidPackage 从 /proc/self/cmdline 读取包名（以 NUL 结尾）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
