package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/portfolio/pkg/embedded"
)

// DefaultStringsPath 默认的双语文本文件路径（嵌入资源）
const DefaultStringsPath = "data/strings.txt"

// Strings 双语文本管理器
// 每个键对应一组按语言区分的文本，替代原页面中元素上的 data-en / data-es 属性
type Strings struct {
	strings map[string]map[Language]string // 键 -> 语言 -> 文本
}

// NewStrings 从嵌入资源加载双语文本
//
// 参数：
//   - filePath: 文本文件路径（通常为 DefaultStringsPath）
//
// 返回：
//   - *Strings: 文本管理器实例
//   - error: 如果文件读取或解析失败
func NewStrings(filePath string) (*Strings, error) {
	file, err := embedded.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open strings file %s: %w", filePath, err)
	}
	defer file.Close()

	s, err := ParseStrings(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file %s: %w", filePath, err)
	}
	return s, nil
}

// ParseStrings 解析双语文本
//
// 文件格式：
//
//	[KEY]
//	en: English text
//	es: Texto en español
//
// 以 # 开头的行为注释；没有前置键的文本行被忽略。
func ParseStrings(r io.Reader) (*Strings, error) {
	s := &Strings{
		strings: make(map[string]map[Language]string),
	}

	scanner := bufio.NewScanner(r)
	var currentKey string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// 跳过空行与注释
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// 键定义（格式：[KEY]）
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := s.strings[currentKey]; !ok {
				s.strings[currentKey] = make(map[Language]string)
			}
			continue
		}

		if currentKey == "" {
			continue
		}

		prefix, text, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lang, ok := ParseLanguage(strings.TrimSpace(prefix))
		if !ok {
			continue
		}
		s.strings[currentKey][lang] = strings.TrimSpace(text)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get 获取指定语言的文本
//
// 返回：
//   - string: 对应文本；该语言缺失时回退到另一种语言；键不存在时返回 "[key]"（用于调试）
func (s *Strings) Get(lang Language, key string) string {
	texts, ok := s.strings[key]
	if !ok {
		return "[" + key + "]"
	}
	if text, ok := texts[lang]; ok {
		return text
	}
	for _, text := range texts {
		return text
	}
	return "[" + key + "]"
}

// Has 检查键是否存在
func (s *Strings) Has(key string) bool {
	_, ok := s.strings[key]
	return ok
}

// Len 返回键的数量
func (s *Strings) Len() int {
	return len(s.strings)
}
