package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/dependencies"
	"github.com/Xushengqwer/image_display_service/models/entities"
)

// contentLink 让内容实体满足 formatter.Content
type contentLink struct {
	content *entities.Content
	site    config.SiteConfig
}

func newContentLink(content *entities.Content, site config.SiteConfig) *contentLink {
	return &contentLink{content: content, site: site}
}

func (c *contentLink) IsPersisted() bool {
	return c.content.IsPersisted()
}

// CanonicalURL 站点地址 + 内容路径前缀 + (slug 或 ID)
func (c *contentLink) CanonicalURL(context.Context) (string, error) {
	base, err := url.Parse(c.site.BaseURL)
	if err != nil {
		return "", err
	}
	key := c.content.Slug
	if key == "" {
		key = strconv.FormatUint(c.content.ID, 10)
	}
	prefix := strings.Trim(c.site.ContentPathPrefix, "/")
	if prefix != "" {
		key = prefix + "/" + key
	}
	return dependencies.JoinURLPath(base, key), nil
}
