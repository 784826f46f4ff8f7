package document

import (
	"math"

	"github.com/mautops/compose-gin/internal/condition"
)

// 页面与网格常量（A4 @ 96dpi）
const (
	PageWidth  = 794
	PageHeight = 1123
	GridSize   = 20

	MinModuleWidth  = 100
	MinModuleHeight = 50
)

// BackgroundModuleID 背景模块的类型 ID
const BackgroundModuleID = "BACKGROUND"

// BackgroundOrder 背景模块的排序哨兵值，始终最先绘制
const BackgroundOrder = -1

// ConditionalDisplayKey 实例配置中保留的条件显示配置 key
const ConditionalDisplayKey = "_conditionalDisplay"

// Position 模块在页面内的像素位置与尺寸
type Position struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ModuleInstance 页面上的一个模块实例
// Position 为空表示流式布局；Hidden 是独立于条件显示的手动开关
type ModuleInstance struct {
	ID       string         `json:"id"`
	ModuleID string         `json:"moduleId"`
	Order    int            `json:"order"`
	Config   map[string]any `json:"config,omitempty"`
	ThemeID  string         `json:"themeId,omitempty"`
	Position *Position      `json:"position,omitempty"`
	Hidden   bool           `json:"hidden,omitempty"`
}

// IsBackground 是否为背景模块
func (m *ModuleInstance) IsBackground() bool {
	return m.ModuleID == BackgroundModuleID
}

// ConditionalDisplay 从配置中取出条件显示配置，未配置或格式不符返回 nil
func (m *ModuleInstance) ConditionalDisplay() *condition.Config {
	raw, ok := m.Config[ConditionalDisplayKey]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case *condition.Config:
		return v
	case condition.Config:
		return &v
	case map[string]any:
		return conditionFromMap(v)
	default:
		return nil
	}
}

// conditionFromMap 将 JSON 反序列化得到的 map 转为条件配置
func conditionFromMap(m map[string]any) *condition.Config {
	cfg := &condition.Config{}
	if b, ok := m["enabled"].(bool); ok {
		cfg.Enabled = b
	}
	if s, ok := m["showContent"].(string); ok {
		cfg.ShowContent = s
	}
	if s, ok := m["hideContent"].(string); ok {
		cfg.HideContent = s
	}
	if s, ok := m["addContent"].(string); ok {
		cfg.AddContent = s
	}
	rules, _ := m["rules"].([]any)
	for _, r := range rules {
		rm, ok := r.(map[string]any)
		if !ok {
			continue
		}
		rule := condition.Rule{CompareValue: rm["compareValue"]}
		if s, ok := rm["action"].(string); ok {
			rule.Action = condition.Action(s)
		}
		if s, ok := rm["operator"].(string); ok {
			rule.Operator = condition.Operator(s)
		}
		if s, ok := rm["fieldRef"].(string); ok {
			rule.FieldRef = s
		}
		if s, ok := rm["logicOperator"].(string); ok {
			rule.LogicOperator = condition.LogicOperator(s)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg
}

// SnapToGrid 将坐标吸附到最近的网格倍数
func SnapToGrid(v int) int {
	return int(math.Round(float64(v)/GridSize)) * GridSize
}

// MoveTo 移动模块实例
// 先吸附网格再收敛到页面边界内，背景模块不可移动；重复调用同一目标是不动点
func (m *ModuleInstance) MoveTo(x, y int) {
	if m.IsBackground() || m.Position == nil {
		return
	}
	nx := clamp(SnapToGrid(x), 0, PageWidth-m.Position.Width)
	ny := clamp(SnapToGrid(y), 0, PageHeight-m.Position.Height)
	m.Position.X = nx
	m.Position.Y = ny
}

// ResizeTo 调整模块实例尺寸
// 尺寸有下限，吸附网格后收敛到页面剩余空间内，背景模块不可调整
func (m *ModuleInstance) ResizeTo(width, height int) {
	if m.IsBackground() || m.Position == nil {
		return
	}
	w := SnapToGrid(max(width, MinModuleWidth))
	h := SnapToGrid(max(height, MinModuleHeight))
	m.Position.Width = clamp(w, MinModuleWidth, PageWidth-m.Position.X)
	m.Position.Height = clamp(h, MinModuleHeight, PageHeight-m.Position.Y)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
