package constant

const (
	ServiceName    = "image_display_service"
	ServiceVersion = "1.0.0"
)

// DefaultViewMode 未指定展示模式时使用的模式名
const DefaultViewMode = "default"

// DefaultConsumerGroupID 未配置消费组时使用的默认值
const DefaultConsumerGroupID = "image_display_service_group"
