package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	ImageStyleChanged      string `mapstructure:"imageStyleChanged" json:"imageStyleChanged" yaml:"imageStyleChanged"`                //  图片样式变更主题 (消费)
	DisplaySettingsUpdated string `mapstructure:"displaySettingsUpdated" json:"displaySettingsUpdated" yaml:"displaySettingsUpdated"` //  展示设置更新主题 (生产)
}
