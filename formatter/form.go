package formatter

// 表单控件类型
const (
	FieldText   = "textfield"
	FieldSelect = "select"
)

// Option 下拉框的一个选项。
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField 设置表单中的一个控件。只描述结构，不负责渲染。
type FormField struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	DefaultValue string   `json:"default_value"`
	EmptyOption  string   `json:"empty_option,omitempty"`
	Options      []Option `json:"options,omitempty"`
}

// Form 设置表单。
type Form struct {
	Fields []FormField `json:"fields"`
}

// Field 按名称查找控件。
func (f Form) Field(name string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FormField{}, false
}

// TemplateOptions 可选的包裹模板。
func TemplateOptions() []Option {
	return []Option{
		{Value: TemplateBxSlider, Label: "jQuery bxSlider"},
		{Value: TemplateBootstrap, Label: "Bootstrap Carousel"},
	}
}

// BuildForm 生成设置表单的结构，styles 为样式注册表中可选的样式。
func BuildForm(s Settings, styles []Option) Form {
	const originalImage = "无 (原始图片)"
	return Form{Fields: []FormField{
		{
			Name:         "image_style",
			Type:         FieldSelect,
			Title:        "图片样式",
			DefaultValue: s.ImageStyle,
			EmptyOption:  originalImage,
			Options:      styles,
		},
		{
			Name:         "image_link",
			Type:         FieldSelect,
			Title:        "图片链接到",
			DefaultValue: string(s.Link),
			EmptyOption:  "无",
			Options: []Option{
				{Value: string(LinkContent), Label: "内容"},
				{Value: string(LinkFile), Label: "文件"},
			},
		},
		{
			Name:         "image_class",
			Type:         FieldText,
			Title:        "追加到图片的 class",
			DefaultValue: s.ImageClass,
		},
		{
			Name:         "link_class",
			Type:         FieldText,
			Title:        "追加到链接标签的 class",
			DefaultValue: s.LinkClass,
		},
		{
			Name:         "images_template",
			Type:         FieldSelect,
			Title:        "图片渲染模板",
			DefaultValue: s.Template,
			EmptyOption:  originalImage,
			Options:      TemplateOptions(),
		},
		{
			Name:         "image_thumb_style",
			Type:         FieldSelect,
			Title:        "缩略图样式",
			DefaultValue: s.ThumbStyle,
			EmptyOption:  originalImage,
			Options:      styles,
		},
	}}
}
