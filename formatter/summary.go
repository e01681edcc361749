package formatter

import "fmt"

// Summary 生成后台列表里展示的设置摘要。
// styleLabels 为当前可用样式 (ID -> 名称)，样式可能随模块启停而消失，此时按原图展示。
func Summary(s Settings, styleLabels map[string]string) []string {
	summary := make([]string, 0, 2)
	if label, ok := styleLabels[s.ImageStyle]; ok && s.ImageStyle != "" {
		summary = append(summary, fmt.Sprintf("图片样式: %s", label))
	} else {
		summary = append(summary, "原始图片")
	}

	switch s.Link {
	case LinkContent:
		summary = append(summary, "链接到内容")
	case LinkFile:
		summary = append(summary, "链接到文件")
	}
	return summary
}
