package render

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mautops/compose-gin/internal/catalog"
	"github.com/mautops/compose-gin/internal/condition"
	"github.com/mautops/compose-gin/internal/document"
	"github.com/mautops/compose-gin/internal/interpolate"
	"github.com/mautops/compose-gin/internal/pricing"
	"github.com/mautops/compose-gin/internal/token"
)

// ErrUnknownModule 渲染时实例引用了目录中不存在的模块类型
// 实例化阶段的未知类型只产生警告，渲染阶段属于程序性错误，显式上抛
var ErrUnknownModule = errors.New("unknown module kind")

// ModuleRender 单个模块的渲染结果
type ModuleRender struct {
	Instance        document.ModuleInstance `json:"instance"`
	Visible         bool                    `json:"visible"`
	ResolvedContent string                  `json:"resolvedContent,omitempty"`
	ResolvedConfig  map[string]any          `json:"resolvedConfig,omitempty"`
	Lines           []pricing.ResolvedLine  `json:"lines,omitempty"`
	Totals          *pricing.Totals         `json:"totals,omitempty"`
}

// PageRender 单页渲染结果
type PageRender struct {
	PageID          string         `json:"pageId"`
	Name            string         `json:"name"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	BackgroundImage string         `json:"backgroundImage,omitempty"`
	Modules         []ModuleRender `json:"modules"`
}

// DocumentRender 整份文档的渲染结果
type DocumentRender struct {
	Pages []PageRender `json:"pages"`
}

// RenderPage 渲染单页
// 模块按 order 升序输出；背景模块先投影到页面背景字段，不作为对象出现在结果中；
// live=false 时保留原始 token 供编辑预览
func RenderPage(page *document.Page, reg *catalog.Registry, ctx *token.RuntimeContext, live bool) (*PageRender, error) {
	// 1. 背景模块投影
	if bg := page.Background(); bg != nil {
		page.ProjectBackground(bg)
	}

	out := &PageRender{
		PageID:          page.ID,
		Name:            page.Name,
		BackgroundColor: page.BackgroundColor,
		BackgroundImage: page.BackgroundImage,
		Modules:         []ModuleRender{},
	}

	// 2. 按 order 逐模块渲染
	for _, inst := range page.SortedModules() {
		if inst.IsBackground() {
			continue
		}

		def, ok := reg.Get(inst.ModuleID)
		if !ok {
			return nil, fmt.Errorf("%w: %s (instance %s)", ErrUnknownModule, inst.ModuleID, inst.ID)
		}

		mr := renderModule(&inst, def, ctx, live)
		out.Modules = append(out.Modules, mr)
	}

	return out, nil
}

// RenderDocument 渲染整份文档
func RenderDocument(cfg *document.TemplateConfig, reg *catalog.Registry, ctx *token.RuntimeContext, live bool) (*DocumentRender, error) {
	out := &DocumentRender{Pages: make([]PageRender, 0, len(cfg.Pages))}
	for i := range cfg.Pages {
		pr, err := RenderPage(&cfg.Pages[i], reg, ctx, live)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %s: %w", cfg.Pages[i].ID, err)
		}
		out.Pages = append(out.Pages, *pr)
	}
	return out, nil
}

// renderModule 渲染单个模块实例
func renderModule(inst *document.ModuleInstance, def *catalog.Definition, ctx *token.RuntimeContext, live bool) ModuleRender {
	mr := ModuleRender{Instance: *inst, Visible: true}

	// 1. 手动隐藏优先于条件显示
	if inst.Hidden {
		mr.Visible = false
		return mr
	}

	// 2. 条件显示链
	chain := condition.EvaluateChain(inst.ConditionalDisplay(), ctx)
	mr.Visible = chain.Visible
	if chain.Content != "" {
		mr.ResolvedContent = interpolate.Text(chain.Content, ctx, live)
	}
	if !mr.Visible && mr.ResolvedContent == "" {
		// 不可见且无替代内容：不再解析配置
		return mr
	}

	// 3. 文本类配置字段做变量替换
	mr.ResolvedConfig = resolveConfig(inst.Config, def, ctx, live)

	// 4. 报价表模块附带行解析与汇总
	if inst.ModuleID == "PRICING_TABLE" {
		lines := linesFromConfig(inst.Config)
		tvaRate := pricing.DefaultTVARate
		if v, ok := numberValue(inst.Config["tvaRate"]); ok {
			tvaRate = v
		}

		expanded := pricing.ExpandRepeaters(lines, ctx)
		for i := range expanded {
			resolved := pricing.ResolveLine(&expanded[i], ctx)
			if resolved.Visible {
				mr.Lines = append(mr.Lines, resolved)
			}
		}
		totals := pricing.Aggregate(lines, ctx, tvaRate)
		mr.Totals = &totals
	}

	return mr
}

// resolveConfig 复制配置并对文本类字段做变量替换
func resolveConfig(config map[string]any, def *catalog.Definition, ctx *token.RuntimeContext, live bool) map[string]any {
	out := make(map[string]any, len(config))
	for k, v := range config {
		out[k] = v
	}
	if !live {
		return out
	}

	for _, field := range def.ConfigFields {
		switch field.Type {
		case "text", "textarea", "rich-text":
			if s, ok := out[field.Key].(string); ok {
				out[field.Key] = interpolate.Text(s, ctx, live)
			}
		}
	}
	return out
}

// linesFromConfig 从配置中取出报价行列表
// 配置来自 JSON 反序列化，经由一次编解码往返转为强类型行
func linesFromConfig(config map[string]any) []pricing.Line {
	raw, ok := config["pricingLines"]
	if !ok {
		return nil
	}
	if lines, ok := raw.([]pricing.Line); ok {
		return lines
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var lines []pricing.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil
	}
	return lines
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
