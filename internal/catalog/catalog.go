package catalog

// Category 模块分类
type Category string

const (
	CategoryContent     Category = "content"
	CategoryLayout      Category = "layout"
	CategoryData        Category = "data"
	CategoryLegal       Category = "legal"
	CategoryMedia       Category = "media"
	CategoryInteraction Category = "interaction"
)

// Theme 模块主题
type Theme struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Styles      map[string]any `json:"styles,omitempty"`
}

// FieldOption 下拉字段选项
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ConfigField 模块可配置字段描述
type ConfigField struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Type    string        `json:"type"` // text/textarea/number/color/select/image/toggle/date/rich-text/data-binding
	Options []FieldOption `json:"options,omitempty"`
	Default any           `json:"default,omitempty"`
	Group   string        `json:"group,omitempty"`
}

// Size 模块默认尺寸（相对页面的百分比）
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Definition 模块定义
// DefaultConfig 是新实例配置的基底，Themes 的第一项为默认主题
type Definition struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      Category       `json:"category"`
	Description   string         `json:"description,omitempty"`
	DefaultConfig map[string]any `json:"defaultConfig,omitempty"`
	Themes        []Theme        `json:"themes,omitempty"`
	ConfigFields  []ConfigField  `json:"configFields,omitempty"`
	Resizable     bool           `json:"resizable"`
	DefaultSize   Size           `json:"defaultSize"`
}

// DefaultThemeID 返回默认主题 ID（第一项），无主题时返回 "default"
func (d *Definition) DefaultThemeID() string {
	if len(d.Themes) > 0 {
		return d.Themes[0].ID
	}
	return "default"
}

// Registry 只读模块目录
// 启动时加载一次，之后并发读取无需加锁
type Registry struct {
	defs []Definition
	byID map[string]*Definition
}

// NewRegistry 从模块定义列表构建目录，保持原始顺序
func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		defs: defs,
		byID: make(map[string]*Definition, len(defs)),
	}
	for i := range r.defs {
		r.byID[r.defs[i].ID] = &r.defs[i]
	}
	return r
}

// Get 按 ID 查找模块定义
func (r *Registry) Get(id string) (*Definition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All 返回全部模块定义
func (r *Registry) All() []Definition {
	return r.defs
}

// ByCategory 返回指定分类下的模块定义
func (r *Registry) ByCategory(cat Category) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Categories 返回目录中出现过的分类，按首次出现顺序
func (r *Registry) Categories() []Category {
	seen := map[Category]bool{}
	var out []Category
	for _, d := range r.defs {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out
}
