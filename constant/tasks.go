package constant

// StyleCacheWarmCronSpec 样式缓存预热任务的默认调度 (每 10 分钟)
const StyleCacheWarmCronSpec = "*/10 * * * *"
