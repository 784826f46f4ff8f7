package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mautops/compose-gin/internal/catalog"
)

// Padding 页面四边留白
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Page 文档中的一页
// BackgroundColor/BackgroundImage 为派生字段：页面上存在 BACKGROUND 模块时，
// 该模块的配置是唯一数据源，每次配置更新都会重新投影到这两个字段
type Page struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Order           int              `json:"order"`
	Padding         Padding          `json:"padding"`
	BackgroundColor string           `json:"backgroundColor,omitempty"`
	BackgroundImage string           `json:"backgroundImage,omitempty"`
	Modules         []ModuleInstance `json:"modules"`
}

// NewPage 创建空白页
func NewPage(name string, order int) *Page {
	return &Page{
		ID:      uuid.NewString(),
		Name:    name,
		Order:   order,
		Padding: Padding{Top: 40, Right: 40, Bottom: 40, Left: 40},
		Modules: []ModuleInstance{},
	}
}

// FindModule 按实例 ID 查找模块
func (p *Page) FindModule(instanceID string) *ModuleInstance {
	for i := range p.Modules {
		if p.Modules[i].ID == instanceID {
			return &p.Modules[i]
		}
	}
	return nil
}

// Background 返回页面的背景模块，不存在返回 nil
func (p *Page) Background() *ModuleInstance {
	for i := range p.Modules {
		if p.Modules[i].IsBackground() {
			return &p.Modules[i]
		}
	}
	return nil
}

// AddModule 在页面上新增模块实例
// 新模块按瀑布式错位摆放；BACKGROUND 全页且每页至多一个，已存在时返回现有实例
func (p *Page) AddModule(def *catalog.Definition) *ModuleInstance {
	if def.ID == BackgroundModuleID {
		if bg := p.Background(); bg != nil {
			return bg
		}
	}

	inst := ModuleInstance{
		ID:       uuid.NewString(),
		ModuleID: def.ID,
		Order:    len(p.Modules),
		Config:   cloneConfig(def.DefaultConfig),
		ThemeID:  def.DefaultThemeID(),
	}

	if def.ID == BackgroundModuleID {
		inst.Order = BackgroundOrder
		inst.Position = &Position{X: 0, Y: 0, Width: PageWidth, Height: PageHeight}
	} else {
		// 瀑布式初始位置，避免新模块完全重叠
		n := 0
		for i := range p.Modules {
			if !p.Modules[i].IsBackground() {
				n++
			}
		}
		inst.Position = &Position{
			X:      40 + (n%3)*40,
			Y:      40 + n*30,
			Width:  PageWidth - 80,
			Height: defaultModuleHeight(def.ID),
		}
	}

	p.Modules = append(p.Modules, inst)
	return &p.Modules[len(p.Modules)-1]
}

// DeleteModule 删除模块实例并压实剩余模块的 order（0..N-1，背景哨兵不参与）
func (p *Page) DeleteModule(instanceID string) bool {
	idx := -1
	for i := range p.Modules {
		if p.Modules[i].ID == instanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.Modules = append(p.Modules[:idx], p.Modules[idx+1:]...)

	order := 0
	for i := range p.Modules {
		if p.Modules[i].IsBackground() {
			continue
		}
		p.Modules[i].Order = order
		order++
	}
	return true
}

// DuplicateModule 复制模块实例，新实例带偏移位置与新 ID
func (p *Page) DuplicateModule(instanceID string) *ModuleInstance {
	src := p.FindModule(instanceID)
	if src == nil || src.IsBackground() {
		return nil
	}

	dup := *src
	dup.ID = uuid.NewString()
	dup.Order = len(p.Modules)
	dup.Config = cloneConfig(src.Config)
	if src.Position != nil {
		pos := *src.Position
		pos.X = min(pos.X+20, PageWidth-pos.Width)
		pos.Y = min(pos.Y+20, PageHeight-pos.Height)
		dup.Position = &pos
	}

	p.Modules = append(p.Modules, dup)
	return &p.Modules[len(p.Modules)-1]
}

// UpdateModuleConfig 更新模块实例的配置（浅合并）
// 背景模块的更新会即时投影到页面背景字段
func (p *Page) UpdateModuleConfig(instanceID string, updates map[string]any, themeID string) *ModuleInstance {
	inst := p.FindModule(instanceID)
	if inst == nil {
		return nil
	}
	if inst.Config == nil {
		inst.Config = map[string]any{}
	}
	for k, v := range updates {
		inst.Config[k] = v
	}
	if themeID != "" {
		inst.ThemeID = themeID
	}
	if inst.IsBackground() {
		p.ProjectBackground(inst)
	}
	return inst
}

// ProjectBackground 将背景模块配置投影到页面背景字段
// 图片值仅接受内嵌数据、绝对 URL 或 CSS 渐变，非法引用跳过投影并保留原状态
func (p *Page) ProjectBackground(inst *ModuleInstance) {
	if inst == nil || !inst.IsBackground() {
		return
	}

	cfg := inst.Config
	themeID := inst.ThemeID
	image, _ := cfg["image"].(string)

	// 未指定主题但配置了内嵌图片时按图片主题处理
	if themeID == "" && strings.HasPrefix(image, "data:") {
		themeID = "image"
	}

	switch themeID {
	case "image":
		if isValidBackgroundImage(image) {
			p.BackgroundImage = image
		}
	case "solid", "color":
		if color, ok := cfg["color"].(string); ok {
			p.BackgroundColor = color
		}
		p.BackgroundImage = ""
	case "gradient":
		start, _ := cfg["gradientStart"].(string)
		end, _ := cfg["gradientEnd"].(string)
		if start == "" {
			start = "#1890ff"
		}
		if end == "" {
			end = "#52c41a"
		}
		angle := 45.0
		if a, ok := numberValue(cfg["gradientAngle"]); ok {
			angle = a
		}
		p.BackgroundImage = fmt.Sprintf("linear-gradient(%gdeg, %s, %s)", angle, start, end)
	}
}

// SortedModules 返回按 order 升序排列的模块副本，背景模块排在最前
func (p *Page) SortedModules() []ModuleInstance {
	out := make([]ModuleInstance, len(p.Modules))
	copy(out, p.Modules)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// isValidBackgroundImage 校验背景图片引用
func isValidBackgroundImage(v string) bool {
	if v == "" {
		return false
	}
	for _, prefix := range []string{"data:", "http://", "https://", "linear-gradient", "radial-gradient"} {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

// defaultModuleHeight 按模块类型给出初始高度
func defaultModuleHeight(moduleID string) int {
	switch moduleID {
	case "TITLE":
		return 60
	case "IMAGE":
		return 200
	case "PRICING_TABLE", "DATA_TABLE":
		return 300
	default:
		return 100
	}
}

// cloneConfig 浅拷贝配置 map
func cloneConfig(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func numberValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
