package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mautops/compose-gin/internal/catalog"
)

// GlobalTheme 文档级主题
type GlobalTheme struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	FontSize       int    `json:"fontSize,omitempty"`
}

// TemplateConfig 完整的文档结构（页面列表 + 全局主题）
// 状态变更一律整值替换而非就地修改，便于消费方对比前后版本
type TemplateConfig struct {
	Pages       []Page      `json:"pages"`
	GlobalTheme GlobalTheme `json:"globalTheme"`
}

// NewTemplateConfig 创建带一张空白页的文档结构
func NewTemplateConfig() *TemplateConfig {
	return &TemplateConfig{
		Pages: []Page{*NewPage("Page 1", 0)},
		GlobalTheme: GlobalTheme{
			PrimaryColor:   "#1890ff",
			SecondaryColor: "#52c41a",
			FontFamily:     "Inter, sans-serif",
			FontSize:       14,
		},
	}
}

// FindPage 按页面 ID 查找
func (c *TemplateConfig) FindPage(pageID string) *Page {
	for i := range c.Pages {
		if c.Pages[i].ID == pageID {
			return &c.Pages[i]
		}
	}
	return nil
}

// AddPage 追加一页
func (c *TemplateConfig) AddPage(name string) *Page {
	page := NewPage(name, len(c.Pages))
	c.Pages = append(c.Pages, *page)
	return &c.Pages[len(c.Pages)-1]
}

// DeletePage 删除页面并压实剩余页面的 order
func (c *TemplateConfig) DeletePage(pageID string) bool {
	idx := -1
	for i := range c.Pages {
		if c.Pages[i].ID == pageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	c.Pages = append(c.Pages[:idx], c.Pages[idx+1:]...)
	for i := range c.Pages {
		c.Pages[i].Order = i
	}
	return true
}

// TemplateModule 预置模板中的一个模块条目
type TemplateModule struct {
	ModuleType string         `json:"moduleType"`
	Order      int            `json:"order"`
	Theme      string         `json:"theme,omitempty"`
	Config     map[string]any `json:"config,omitempty"`
}

// DocumentTemplate 预置文档模板
// 仅用于给页面播种模块实例，实例化之后与模板不再有任何关联
type DocumentTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category"` // devis/facture/commande/contrat/autre
	Modules     []TemplateModule `json:"modules"`
}

// Instantiate 将模板实例化为模块实例列表
// 未知模块类型跳过并记录警告，不中断其余条目；
// 配置为目录默认值与模板覆盖值的浅合并，每个实例分配全新唯一 ID
func Instantiate(tpl *DocumentTemplate, reg *catalog.Registry) ([]ModuleInstance, []string) {
	instances := make([]ModuleInstance, 0, len(tpl.Modules))
	var warnings []string

	for _, tm := range tpl.Modules {
		def, ok := reg.Get(tm.ModuleType)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("module type %q not found in catalog", tm.ModuleType))
			continue
		}

		config := cloneConfig(def.DefaultConfig)
		for k, v := range tm.Config {
			config[k] = v
		}

		themeID := tm.Theme
		if themeID == "" {
			themeID = def.DefaultThemeID()
		}

		instances = append(instances, ModuleInstance{
			ID:       uuid.NewString(),
			ModuleID: tm.ModuleType,
			Order:    tm.Order,
			Config:   config,
			ThemeID:  themeID,
		})
	}

	return instances, warnings
}

// ApplyTemplate 把模板实例化并铺到页面上，替换页面原有模块
// 实例按序纵向排布，返回实例化过程中的警告
func (p *Page) ApplyTemplate(tpl *DocumentTemplate, reg *catalog.Registry) []string {
	instances, warnings := Instantiate(tpl, reg)
	for i := range instances {
		instances[i].Position = &Position{
			X:      40,
			Y:      40 + i*120,
			Width:  PageWidth - 80,
			Height: 100,
		}
	}
	p.Modules = instances
	return warnings
}
