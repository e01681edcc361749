package constant

import "time"

// Redis Key 相关常量
const (
	// ImageStyleCacheKeyPrefix 图片样式缓存的 Key 前缀。
	// 示例 Key: "image_style:thumb_100x100"
	// Redis 类型: String (JSON 序列化的 vo.ImageStyleVO，或占位值)
	ImageStyleCacheKeyPrefix = "image_style:"

	// ImageStyleMissingMarker 样式不存在时写入的占位值，避免对不存在的样式反复回源 MySQL。
	ImageStyleMissingMarker = "-"

	// DefaultImageStyleCacheTTL 未配置 TTL 时的默认值。
	DefaultImageStyleCacheTTL = 30 * time.Minute

	// ImageStyleMissingTTL 占位值的过期时间，比正常值短，新建的样式能较快生效。
	ImageStyleMissingTTL = time.Minute
)
