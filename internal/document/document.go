package document

import "time"

// Document 完整的文档对象,持久化为 JSON
type Document struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Version     int             `json:"version"`
	Config      *TemplateConfig `json:"config"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Clone 深拷贝文档(通过页面和模块的拷贝)
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Config != nil {
		cfg := TemplateConfig{
			GlobalTheme: d.Config.GlobalTheme,
			Pages:       make([]Page, len(d.Config.Pages)),
		}
		for i, p := range d.Config.Pages {
			page := p
			page.Modules = make([]ModuleInstance, len(p.Modules))
			for j, m := range p.Modules {
				inst := m
				inst.Config = cloneConfig(m.Config)
				if m.Position != nil {
					pos := *m.Position
					inst.Position = &pos
				}
				page.Modules[j] = inst
			}
			cfg.Pages[i] = page
		}
		clone.Config = &cfg
	}
	return &clone
}
