package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mautops/compose-gin/internal/condition"
	"github.com/mautops/compose-gin/internal/token"
)

// TestResolveLineDynamic 动态行从 token 引用取值
func TestResolveLineDynamic(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"qty": "3"}}

	line := Line{Type: LineDynamic, Label: "Isolation toiture", QuantitySource: "@value.qty", UnitPrice: 25.0}
	resolved := ResolveLine(&line, ctx)

	assert.True(t, resolved.Visible)
	assert.Equal(t, 3.0, resolved.Quantity)
	assert.Equal(t, 25.0, resolved.UnitPrice)
	assert.Equal(t, 75.0, resolved.LineTotal)
}

// TestResolveLineDefaults Source 与字面量都缺失时使用类型默认值
func TestResolveLineDefaults(t *testing.T) {
	ctx := &token.RuntimeContext{}

	line := Line{Type: LineStatic, Label: "Forfait"}
	resolved := ResolveLine(&line, ctx)
	assert.Equal(t, 1.0, resolved.Quantity)
	assert.Equal(t, 0.0, resolved.UnitPrice)
	assert.Equal(t, 0.0, resolved.LineTotal)

	// Source 解析失败回退字面量
	line = Line{Type: LineDynamic, QuantitySource: "@value.absent", Quantity: 4.0, UnitPrice: "10"}
	resolved = ResolveLine(&line, ctx)
	assert.Equal(t, 4.0, resolved.Quantity)
	assert.Equal(t, 10.0, resolved.UnitPrice)
	assert.Equal(t, 40.0, resolved.LineTotal)
}

// TestResolveLineLabel 标签解析顺序：labelSource → 字面量 → 默认文案
func TestResolveLineLabel(t *testing.T) {
	ctx := &token.RuntimeContext{
		Tbl:  map[string]any{"produit": "Pompe à chaleur"},
		Lead: map[string]any{"name": "Acme"},
	}

	line := Line{LabelSource: "@value.produit"}
	assert.Equal(t, "Pompe à chaleur", ResolveLine(&line, ctx).Label)

	line = Line{LabelSource: "@value.absent", Label: "Ligne manuelle"}
	assert.Equal(t, "Ligne manuelle", ResolveLine(&line, ctx).Label)

	line = Line{LabelSource: "@value.absent"}
	assert.Equal(t, "Non défini", ResolveLine(&line, ctx).Label)

	// 无 labelSource 时字面量标签做变量替换
	line = Line{Label: "Prestation pour {lead.name}"}
	assert.Equal(t, "Prestation pour Acme", ResolveLine(&line, ctx).Label)
}

// TestResolveLineTotalPrecedence 行合计解析顺序：totalSource → 字面量 → 数量×单价
func TestResolveLineTotalPrecedence(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"montant": 990.0}}

	line := Line{Quantity: 2.0, UnitPrice: 100.0, TotalSource: "@value.montant"}
	assert.Equal(t, 990.0, ResolveLine(&line, ctx).LineTotal)

	line = Line{Quantity: 2.0, UnitPrice: 100.0, Total: 150.0}
	assert.Equal(t, 150.0, ResolveLine(&line, ctx).LineTotal)

	line = Line{Quantity: 2.0, UnitPrice: 100.0}
	assert.Equal(t, 200.0, ResolveLine(&line, ctx).LineTotal)
}

// TestResolveLineCondition 行级条件不满足时 Visible=false
func TestResolveLineCondition(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"option": "non"}}

	line := Line{
		Label:     "Option premium",
		Quantity:  1.0,
		UnitPrice: 500.0,
		Condition: &condition.Config{
			Enabled: true,
			Rules: []condition.Rule{
				{Action: condition.ActionShow, Operator: condition.OpEquals, FieldRef: "@value.option", CompareValue: "oui"},
			},
		},
	}

	resolved := ResolveLine(&line, ctx)
	assert.False(t, resolved.Visible)
	assert.Equal(t, 500.0, resolved.LineTotal)
}

// TestExpandRepeaters repeater 行按 tbl 实例展开
func TestExpandRepeaters(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{
		"fenetre-1": map[string]any{"largeur": 120},
		"fenetre-2": map[string]any{"largeur": 90},
		"fenetre-3": map[string]any{"largeur": 60},
		"porte-1":   map[string]any{},
	}}

	lines := []Line{
		{ID: "l1", Type: LineStatic, Label: "Déplacement", UnitPrice: 50.0},
		{ID: "l2", Type: LineRepeater, RepeaterID: "fenetre", Label: "Fenêtre", Quantity: 1.0, UnitPrice: 350.0},
	}

	expanded := ExpandRepeaters(lines, ctx)
	assert.Len(t, expanded, 4)
	assert.Equal(t, "Déplacement", expanded[0].Label)
	assert.Equal(t, "Fenêtre (#1)", expanded[1].Label)
	assert.Equal(t, "Fenêtre (#2)", expanded[2].Label)
	assert.Equal(t, "Fenêtre (#3)", expanded[3].Label)
	assert.Equal(t, LineStatic, expanded[1].Type)
	assert.Equal(t, "l2-1", expanded[1].ID)

	// 无实例的 repeater 展开为零行
	none := ExpandRepeaters([]Line{{ID: "x", Type: LineRepeater, RepeaterID: "velux"}}, ctx)
	assert.Empty(t, none)
}

// TestAggregate 汇总计算
func TestAggregate(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"qty": "3"}}

	lines := []Line{
		{Type: LineStatic, Label: "Forfait", Quantity: 1.0, UnitPrice: 100.0},
		{Type: LineDynamic, Label: "Unités", QuantitySource: "@value.qty", UnitPrice: 25.0},
	}

	totals := Aggregate(lines, ctx, DefaultTVARate)
	assert.Equal(t, 175.0, totals.TotalHT)
	assert.InDelta(t, 36.75, totals.TVA, 1e-9)
	assert.InDelta(t, 211.75, totals.TotalTTC, 1e-9)
}

// TestAggregateAdditivity 汇总可分段相加，不可见行贡献恰为 0
func TestAggregateAdditivity(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"opt": "non"}}

	hidden := Line{
		Label: "Option", Quantity: 1.0, UnitPrice: 999.0,
		Condition: &condition.Config{
			Enabled: true,
			Rules: []condition.Rule{
				{Action: condition.ActionShow, Operator: condition.OpEquals, FieldRef: "@value.opt", CompareValue: "oui"},
			},
		},
	}
	lines := []Line{
		{Label: "A", Quantity: 2.0, UnitPrice: 10.0},
		hidden,
		{Label: "B", Quantity: 1.0, UnitPrice: 30.0},
	}

	whole := Aggregate(lines, ctx, 21)
	left := Aggregate(lines[:2], ctx, 21)
	right := Aggregate(lines[2:], ctx, 21)

	assert.Equal(t, 50.0, whole.TotalHT)
	assert.Equal(t, whole.TotalHT, left.TotalHT+right.TotalHT)
	assert.Equal(t, 20.0, left.TotalHT)
}

// TestRound2 展示层舍入
func TestRound2(t *testing.T) {
	assert.Equal(t, 36.75, Round2(36.750000000001))
	assert.Equal(t, 0.1, Round2(0.10000000000000003))
	assert.Equal(t, 2.68, Round2(2.675000001))
}
