package formatter

import (
	"context"
	"fmt"
)

// Projector 把字段取值投影为渲染描述。无状态，可以被多个请求并发使用。
type Projector struct {
	styles StyleRegistry
	files  FileURLGenerator
}

// NewProjector 创建 Projector，styles 与 files 为外部协作方。
// files 可以为 nil，此时链接到文件的设置会返回 ErrNoFileURLGenerator。
func NewProjector(styles StyleRegistry, files FileURLGenerator) *Projector {
	return &Projector{styles: styles, files: files}
}

// Project 按 settings 投影 items。
//   - items 为空时直接返回空结果，不会调用任何协作方。
//   - 输出顺序与输入顺序一致，Delta 即输入下标。
//   - 协作方返回的错误原样向上传递 (带上下文包装)，整个投影失败，不返回部分结果。
func (p *Projector) Project(ctx context.Context, owner Content, items []MediaItem, settings Settings) (*ProjectionResult, error) {
	if len(items) == 0 {
		return &ProjectionResult{Items: []Element{}}, nil
	}

	// 1. 链接：内容链接所有取值共用一个；文件链接在循环内逐个计算
	var contentURL string
	if settings.Link == LinkContent && owner != nil && owner.IsPersisted() {
		u, err := owner.CanonicalURL(ctx)
		if err != nil {
			return nil, fmt.Errorf("解析内容地址失败: %w", err)
		}
		contentURL = u
	}

	// 2. 基础缓存标签：只在配置了主图样式时查询一次
	baseTags, err := p.styleTags(ctx, settings.ImageStyle)
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(items))
	for delta, item := range items {
		url := contentURL
		contexts := []string{}
		if settings.Link == LinkFile {
			if p.files == nil {
				return nil, fmt.Errorf("生成文件地址失败 (delta=%d): %w", delta, ErrNoFileURLGenerator)
			}
			fileURL, err := p.files.ToAbsoluteURL(ctx, item.URI)
			if err != nil {
				return nil, fmt.Errorf("生成文件地址失败 (delta=%d): %w", delta, err)
			}
			url = fileURL
			contexts = append(contexts, CacheContextURLSite)
		}
		cache := CacheMetadata{
			Tags:     MergeTags(baseTags, item.CacheTags),
			Contexts: contexts,
		}

		attrs := item.Attributes.Clone()
		if settings.ImageClass != "" {
			attrs[ClassAttribute] = append(attrs[ClassAttribute], settings.ImageClass)
		}

		image := RenderDescriptor{
			Theme:          ThemeImage,
			Item:           item,
			ItemAttributes: attrs,
			ImageStyle:     settings.ImageStyle,
			URL:            url,
			Class:          settings.LinkClass,
			Cache:          cache,
		}
		el := Element{Delta: delta, Image: image}
		if settings.Wrapped() {
			thumb := image
			thumb.ImageStyle = settings.ThumbStyle
			el.Thumb = &thumb
		}
		elements = append(elements, el)
	}

	result := &ProjectionResult{Items: elements}
	if settings.Wrapped() {
		result.Theme = settings.Template
	}
	return result, nil
}

// styleTags 查询样式的缓存标签，未配置或样式不存在时返回空集合。
func (p *Projector) styleTags(ctx context.Context, styleID string) ([]string, error) {
	if styleID == "" || p.styles == nil {
		return nil, nil
	}
	style, err := p.styles.Load(ctx, styleID)
	if err != nil {
		return nil, fmt.Errorf("加载图片样式 %q 失败: %w", styleID, err)
	}
	if style == nil {
		return nil, nil
	}
	return style.CacheTags(), nil
}
