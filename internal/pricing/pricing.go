package pricing

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mautops/compose-gin/internal/condition"
	"github.com/mautops/compose-gin/internal/interpolate"
	"github.com/mautops/compose-gin/internal/token"
)

// LineType 报价行类型
type LineType string

const (
	LineStatic   LineType = "static"   // 静态行，取值来自字面量
	LineDynamic  LineType = "dynamic"  // 动态行，取值来自 token 引用
	LineRepeater LineType = "repeater" // 重复行，按外部数据实例展开
)

// DefaultTVARate 默认增值税率（百分比）
const DefaultTVARate = 21.0

// DefaultLabel 标签无法解析时的兜底文案
const DefaultLabel = "Non défini"

// Line 报价表中的一行配置
// *Source 字段为 token 引用，设置时优先于同名字面量
type Line struct {
	ID              string            `json:"id"`
	Type            LineType          `json:"type"`
	Label           string            `json:"label,omitempty"`
	LabelSource     string            `json:"labelSource,omitempty"`
	Quantity        any               `json:"quantity,omitempty"`
	QuantitySource  string            `json:"quantitySource,omitempty"`
	UnitPrice       any               `json:"unitPrice,omitempty"`
	UnitPriceSource string            `json:"unitPriceSource,omitempty"`
	Total           any               `json:"total,omitempty"`
	TotalSource     string            `json:"totalSource,omitempty"`
	RepeaterID      string            `json:"repeaterId,omitempty"`
	Condition       *condition.Config `json:"condition,omitempty"`
	Order           int               `json:"order"`
}

// ResolvedLine 解析后的报价行
type ResolvedLine struct {
	Label     string  `json:"label"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
	Visible   bool    `json:"visible"`
}

// Totals 报价汇总
type Totals struct {
	TotalHT  float64 `json:"totalHT"`
	TVA      float64 `json:"tva"`
	TotalTTC float64 `json:"totalTTC"`
}

// ResolveLine 解析单行报价
// 数值字段解析顺序：*Source 引用 → 字面量 → 类型默认值（数量 1，单价 0）；
// 行级条件不满足时 Visible=false，汇总阶段整行剔除
func ResolveLine(line *Line, ctx *token.RuntimeContext) ResolvedLine {
	out := ResolvedLine{Visible: true}

	// 1. 行级条件
	if line.Condition != nil {
		out.Visible = condition.EvaluateChain(line.Condition, ctx).Visible
	}

	// 2. 标签：labelSource 优先，失败回退字面量，再回退默认文案
	if line.LabelSource != "" {
		if v, ok := token.Resolve(line.LabelSource, ctx); ok && v != nil {
			out.Label = token.Stringify(v)
		} else if line.Label != "" {
			out.Label = line.Label
		} else {
			out.Label = DefaultLabel
		}
	} else {
		out.Label = interpolate.Text(line.Label, ctx, true)
	}

	// 3. 数量与单价
	out.Quantity = resolveNumber(line.QuantitySource, line.Quantity, ctx, 1)
	out.UnitPrice = resolveNumber(line.UnitPriceSource, line.UnitPrice, ctx, 0)

	// 4. 行合计：totalSource → 字面量 → 数量×单价
	if line.TotalSource != "" || line.Total != nil {
		out.LineTotal = resolveNumber(line.TotalSource, line.Total, ctx, out.Quantity*out.UnitPrice)
	} else {
		out.LineTotal = out.Quantity * out.UnitPrice
	}

	return out
}

// ExpandRepeaters 展开重复行
// 每个 repeater 行按 tbl 中匹配 "<repeaterId>-<n>" 的实例 key 派生 N 条静态行，
// 派生行沿用原行配置，标签追加实例编号；汇总计算只处理展开后的行
func ExpandRepeaters(lines []Line, ctx *token.RuntimeContext) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Type != LineRepeater || line.RepeaterID == "" {
			out = append(out, line)
			continue
		}
		for _, n := range repeaterInstances(line.RepeaterID, ctx) {
			derived := line
			derived.Type = LineStatic
			derived.ID = fmt.Sprintf("%s-%s", line.ID, n)
			if derived.Label != "" {
				derived.Label = fmt.Sprintf("%s (#%s)", derived.Label, n)
			}
			out = append(out, derived)
		}
	}
	return out
}

// Aggregate 汇总报价行
// 先展开 repeater，再逐行解析；不可见行完全不计入；
// 内部累加保持浮点全精度，两位小数的舍入只在展示层进行
func Aggregate(lines []Line, ctx *token.RuntimeContext, tvaRatePercent float64) Totals {
	var totalHT float64
	for _, line := range ExpandRepeaters(lines, ctx) {
		resolved := ResolveLine(&line, ctx)
		if !resolved.Visible {
			continue
		}
		totalHT += resolved.LineTotal
	}

	tva := totalHT * tvaRatePercent / 100
	return Totals{
		TotalHT:  totalHT,
		TVA:      tva,
		TotalTTC: totalHT + tva,
	}
}

// Round2 四舍五入到两位小数，仅用于展示
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// resolveNumber 按 Source → 字面量 → 默认值 的顺序解析数值字段
func resolveNumber(source string, literal any, ctx *token.RuntimeContext, def float64) float64 {
	if source != "" {
		if v, ok := token.Resolve(source, ctx); ok {
			if f, ok := parseNumber(v); ok {
				return f
			}
		}
	}
	if literal != nil {
		if f, ok := parseNumber(literal); ok {
			return f
		}
	}
	return def
}

// parseNumber 宽松数值解析，字符串按十进制浮点解析
func parseNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// repeaterInstances 收集 tbl 中属于指定 repeater 的实例编号，按数值升序
func repeaterInstances(repeaterID string, ctx *token.RuntimeContext) []string {
	if ctx == nil || ctx.Tbl == nil {
		return nil
	}
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(repeaterID) + `-(\d+)$`)

	seen := map[string]bool{}
	var nums []int
	for key := range ctx.Tbl {
		m := pattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		if !seen[m[1]] {
			seen[m[1]] = true
			n, _ := strconv.Atoi(m[1])
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)

	out := make([]string, 0, len(nums))
	for _, n := range nums {
		out = append(out, strconv.Itoa(n))
	}
	return out
}
