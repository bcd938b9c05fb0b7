package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度按单词换行
// 参数:
//   - textStr: 要换行的文本，"\n" 强制换行
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的各行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if face == nil {
		return []string{textStr}
	}
	return WrapWords(textStr, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
}

// WrapWords 使用给定的测量函数按单词换行
// 单个单词超过 maxWidth 时独占一行，不在单词内部断开
func WrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	if maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
