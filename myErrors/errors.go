package myErrors

import (
	"errors"

	"github.com/Xushengqwer/image_display_service/formatter"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrInvalidSettings 展示设置校验失败，与 formatter 包使用同一个哨兵错误
var ErrInvalidSettings = formatter.ErrInvalidSettings

// ErrStyleNotFound 展示设置引用了不存在的图片样式
var ErrStyleNotFound = errors.New("image style not found")

// ErrUnsupportedURI 文件 URI 的协议无法转换为访问地址
var ErrUnsupportedURI = errors.New("unsupported file uri scheme")
