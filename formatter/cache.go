package formatter

// CacheContextURLSite 文件链接随站点 (域名/协议) 变化，需要按站点区分缓存。
const CacheContextURLSite = "url.site"

// MergeTags 合并两组缓存标签，去重并保持首次出现的顺序。
func MergeTags(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, set := range [][]string{a, b} {
		for _, tag := range set {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
