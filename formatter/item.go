package formatter

import "slices"

// ClassAttribute 是 Attributes 中保存 class 列表的键。
const ClassAttribute = "class"

// Attributes 单个取值的 HTML 属性。每个属性可以有多个值 (例如 class)。
type Attributes map[string][]string

// Clone 深拷贝属性，保证投影过程不会改写调用方持有的数据。
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = slices.Clone(v)
	}
	return out
}

// Classes 返回 class 列表。
func (a Attributes) Classes() []string {
	return a[ClassAttribute]
}

// MediaItem 字段中的一个图片引用，由外部的实体/字段系统持有，这里只读。
type MediaItem struct {
	FileID     uint64     `json:"file_id"`
	URI        string     `json:"uri"`
	Alt        string     `json:"alt,omitempty"`
	Title      string     `json:"title,omitempty"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	Attributes Attributes `json:"-"`
	CacheTags  []string   `json:"-"`
}
