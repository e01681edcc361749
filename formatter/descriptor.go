package formatter

// ThemeImage 单张图片描述使用的主题键。
const ThemeImage = "image_formatter"

// CacheMetadata 描述的缓存元数据，交给宿主的缓存层使用。
type CacheMetadata struct {
	Tags     []string `json:"tags"`
	Contexts []string `json:"contexts"`
}

// RenderDescriptor 一个待渲染的图片描述。
type RenderDescriptor struct {
	Theme          string        `json:"theme"`
	Item           MediaItem     `json:"item"`
	ItemAttributes Attributes    `json:"item_attributes"`
	ImageStyle     string        `json:"image_style"`
	URL            string        `json:"url,omitempty"` // 空表示不加链接
	Class          string        `json:"class,omitempty"`
	Cache          CacheMetadata `json:"cache"`
}

// Element 某个 delta 上的输出。未配置模板时只有 Image，配置模板时 Image/Thumb 成对出现。
type Element struct {
	Delta int               `json:"delta"`
	Image RenderDescriptor  `json:"image"`
	Thumb *RenderDescriptor `json:"thumb,omitempty"`
}

// ProjectionResult 投影结果。
// Theme 非空时整个结果是一个包裹描述 {theme: 模板 ID, items: [...]}，否则 Items 就是平铺序列。
type ProjectionResult struct {
	Theme string    `json:"theme,omitempty"`
	Items []Element `json:"items"`
}

// Empty 结果中没有任何元素。
func (r *ProjectionResult) Empty() bool {
	return r == nil || len(r.Items) == 0
}

// Wrapped 结果是否被模板包裹。
func (r *ProjectionResult) Wrapped() bool {
	return r != nil && r.Theme != ""
}
