package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// RenderFieldResponseWrapper 对应 response.APIResponse[vo.RenderFieldVO]
type RenderFieldResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    RenderFieldVO `json:"data"`
}

// DisplaySettingsResponseWrapper 对应 response.APIResponse[vo.DisplaySettingsVO]
type DisplaySettingsResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    DisplaySettingsVO `json:"data"`
}

// SettingsFormResponseWrapper 对应 response.APIResponse[vo.SettingsFormVO]
type SettingsFormResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    SettingsFormVO `json:"data"`
}

// SettingsSummaryResponseWrapper 对应 response.APIResponse[vo.SettingsSummaryVO]
type SettingsSummaryResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    SettingsSummaryVO `json:"data"`
}

// ImageStyleListResponseWrapper 对应 response.APIResponse[[]vo.ImageStyleVO]
type ImageStyleListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []ImageStyleVO `json:"data"`
}

// --- 用于错误响应 ---

// BaseResponseWrapper 只包含 Code 和 Message 的响应
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
