package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mautops/compose-gin/internal/token"
)

// TestEvaluateRuleOperators 测试各比较操作符
func TestEvaluateRuleOperators(t *testing.T) {
	ctx := &token.RuntimeContext{
		Lead: map[string]any{
			"country": "Belgium",
			"sector":  "Construction et rénovation",
			"empty":   "",
		},
		Quote: map[string]any{"totalHT": 1500.0},
		Tbl:   map[string]any{"qty": "3"},
	}

	cases := []struct {
		name     string
		rule     Rule
		expected bool
	}{
		{"equals", Rule{Operator: OpEquals, FieldRef: "{lead.country}", CompareValue: "Belgium"}, true},
		{"not_equals", Rule{Operator: OpNotEquals, FieldRef: "{lead.country}", CompareValue: "France"}, true},
		{"equals_number_coerced", Rule{Operator: OpEquals, FieldRef: "@value.qty", CompareValue: 3.0}, true},
		{"contains_case_insensitive", Rule{Operator: OpContains, FieldRef: "{lead.sector}", CompareValue: "RÉNOVATION"}, true},
		{"not_contains", Rule{Operator: OpNotContains, FieldRef: "{lead.sector}", CompareValue: "plomberie"}, true},
		{"greater_than", Rule{Operator: OpGreaterThan, FieldRef: "{quote.totalHT}", CompareValue: 1000}, true},
		{"greater_than_string_field", Rule{Operator: OpGreaterThan, FieldRef: "@value.qty", CompareValue: 2}, true},
		{"less_than_false", Rule{Operator: OpLessThan, FieldRef: "{quote.totalHT}", CompareValue: 1000}, false},
		{"greater_or_equal", Rule{Operator: OpGreaterOrEqual, FieldRef: "{quote.totalHT}", CompareValue: 1500}, true},
		{"less_or_equal", Rule{Operator: OpLessOrEqual, FieldRef: "{quote.totalHT}", CompareValue: 1500}, true},
		{"is_empty_blank_string", Rule{Operator: OpIsEmpty, FieldRef: "{lead.empty}"}, true},
		{"is_empty_missing", Rule{Operator: OpIsEmpty, FieldRef: "{lead.absent}"}, true},
		{"is_not_empty", Rule{Operator: OpIsNotEmpty, FieldRef: "{lead.country}"}, true},
		{"unknown_operator_visible", Rule{Operator: "BETWEEN", FieldRef: "{quote.totalHT}", CompareValue: 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EvaluateRule(&tc.rule, ctx))
		})
	}
}

// TestNumericOperatorNonNumeric 数值操作符遇到非数值数据恒为 false
// 包括其取反操作符，两边都不成立
func TestNumericOperatorNonNumeric(t *testing.T) {
	ctx := &token.RuntimeContext{Lead: map[string]any{"country": "Belgium"}}

	gt := Rule{Operator: OpGreaterThan, FieldRef: "{lead.country}", CompareValue: 10}
	lt := Rule{Operator: OpLessThan, FieldRef: "{lead.country}", CompareValue: 10}
	le := Rule{Operator: OpLessOrEqual, FieldRef: "{lead.country}", CompareValue: 10}
	ge := Rule{Operator: OpGreaterOrEqual, FieldRef: "{lead.country}", CompareValue: 10}

	assert.False(t, EvaluateRule(&gt, ctx))
	assert.False(t, EvaluateRule(&lt, ctx))
	assert.False(t, EvaluateRule(&le, ctx))
	assert.False(t, EvaluateRule(&ge, ctx))

	// 缺失字段同样为 false
	missing := Rule{Operator: OpGreaterThan, FieldRef: "{lead.absent}", CompareValue: 0}
	assert.False(t, EvaluateRule(&missing, ctx))
}

// TestEvaluateChainShow 测试 SHOW 动作
func TestEvaluateChainShow(t *testing.T) {
	ctx := &token.RuntimeContext{Quote: map[string]any{"totalHT": 1500.0}}

	cfg := &Config{
		Enabled: true,
		Rules: []Rule{
			{Action: ActionShow, Operator: OpGreaterThan, FieldRef: "{quote.totalHT}", CompareValue: 1000},
		},
	}
	res := EvaluateChain(cfg, ctx)
	assert.True(t, res.Visible)
	assert.Empty(t, res.Content)

	// 不满足时隐藏并返回替代内容
	cfg.Rules[0].CompareValue = 2000
	cfg.HideContent = "Montant insuffisant"
	res = EvaluateChain(cfg, ctx)
	assert.False(t, res.Visible)
	assert.Equal(t, "Montant insuffisant", res.Content)
}

// TestEvaluateChainHide SHOW 与 HIDE 对同一链结果的可见性互补
func TestEvaluateChainHide(t *testing.T) {
	ctx := &token.RuntimeContext{Quote: map[string]any{"totalHT": 1500.0}}
	rule := Rule{Operator: OpGreaterThan, FieldRef: "{quote.totalHT}", CompareValue: 1000}

	show := rule
	show.Action = ActionShow
	hide := rule
	hide.Action = ActionHide

	showRes := EvaluateChain(&Config{Enabled: true, Rules: []Rule{show}}, ctx)
	hideRes := EvaluateChain(&Config{Enabled: true, Rules: []Rule{hide}}, ctx)
	assert.True(t, showRes.Visible)
	assert.False(t, hideRes.Visible)
	assert.Equal(t, showRes.Visible, !hideRes.Visible)
}

// TestEvaluateChainAddContent ADD_CONTENT 动作始终可见
func TestEvaluateChainAddContent(t *testing.T) {
	ctx := &token.RuntimeContext{Quote: map[string]any{"totalHT": 500.0}}
	cfg := &Config{
		Enabled:    true,
		AddContent: "Remise fidélité appliquée",
		Rules: []Rule{
			{Action: ActionAddContent, Operator: OpGreaterThan, FieldRef: "{quote.totalHT}", CompareValue: 1000},
		},
	}

	res := EvaluateChain(cfg, ctx)
	assert.True(t, res.Visible)
	assert.Empty(t, res.Content)

	ctx.Quote["totalHT"] = 1500.0
	res = EvaluateChain(cfg, ctx)
	assert.True(t, res.Visible)
	assert.Equal(t, "Remise fidélité appliquée", res.Content)
}

// TestEvaluateChainMissingField 缺失字段按字符串 "undefined" 参与比较
func TestEvaluateChainMissingField(t *testing.T) {
	ctx := &token.RuntimeContext{Lead: map[string]any{"country": "Belgium"}}
	cfg := &Config{
		Enabled: true,
		Rules: []Rule{
			{Action: ActionShow, Operator: OpEquals, FieldRef: "{lead.country}", CompareValue: "Belgium"},
			{Operator: OpEquals, FieldRef: "{lead.vatLiable}", CompareValue: "true", LogicOperator: LogicAnd},
		},
	}

	res := EvaluateChain(cfg, ctx)
	assert.False(t, res.Visible)
}

// TestContainsMissingField 子串比较中未解析的字段按空串参与
// 不能退化为 "undefined"，否则 CONTAINS "und" 会在数据缺失时误判为真
func TestContainsMissingField(t *testing.T) {
	ctx := &token.RuntimeContext{Lead: map[string]any{"country": "Belgium"}}

	contains := Rule{Operator: OpContains, FieldRef: "{lead.missing}", CompareValue: "und"}
	assert.False(t, EvaluateRule(&contains, ctx))

	notContains := Rule{Operator: OpNotContains, FieldRef: "{lead.missing}", CompareValue: "und"}
	assert.True(t, EvaluateRule(&notContains, ctx))

	// 相等比较仍按 "undefined" 参与
	equals := Rule{Operator: OpEquals, FieldRef: "{lead.missing}", CompareValue: "undefined"}
	assert.True(t, EvaluateRule(&equals, ctx))

	// 空串是任意字符串的子串，缺失字段对空比较值仍成立
	emptyNeedle := Rule{Operator: OpContains, FieldRef: "{lead.missing}", CompareValue: ""}
	assert.True(t, EvaluateRule(&emptyNeedle, ctx))
}

// TestContainsFalsyField 假值字段在子串比较中同样按空串参与
func TestContainsFalsyField(t *testing.T) {
	ctx := &token.RuntimeContext{Quote: map[string]any{"discount": 0.0, "approved": false}}

	zero := Rule{Operator: OpContains, FieldRef: "{quote.discount}", CompareValue: "0"}
	assert.False(t, EvaluateRule(&zero, ctx))

	falseVal := Rule{Operator: OpContains, FieldRef: "{quote.approved}", CompareValue: "false"}
	assert.False(t, EvaluateRule(&falseVal, ctx))
}

// TestEvaluateChainUnknownLogicOperator 无法识别连接符的后续规则不参与折叠
func TestEvaluateChainUnknownLogicOperator(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"t": "yes", "f": "no"}}
	cfg := &Config{
		Enabled: true,
		Rules: []Rule{
			{Action: ActionShow, Operator: OpEquals, FieldRef: "@value.t", CompareValue: "yes"},
			{Operator: OpEquals, FieldRef: "@value.f", CompareValue: "yes", LogicOperator: "XOR"},
			{Operator: OpEquals, FieldRef: "@value.f", CompareValue: "yes"},
		},
	}

	// 首条为真，后两条（假）因连接符非法被忽略
	res := EvaluateChain(cfg, ctx)
	assert.True(t, res.Visible)
}

// TestEvaluateChainLeftAssociative 规则链严格从左到右结合，无优先级
// A AND B OR C 必须等价于 ((A && B) || C) 而不是 (A && (B || C))
func TestEvaluateChainLeftAssociative(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"t": "yes", "f": "no"}}

	tr := func(logic LogicOperator) Rule {
		return Rule{Operator: OpEquals, FieldRef: "@value.t", CompareValue: "yes", LogicOperator: logic}
	}
	fa := func(logic LogicOperator) Rule {
		return Rule{Operator: OpEquals, FieldRef: "@value.f", CompareValue: "yes", LogicOperator: logic}
	}

	// A=false, B=false, C=true：((false && false) || true) = true
	a := fa("")
	a.Action = ActionShow
	cfg := &Config{Enabled: true, Rules: []Rule{a, fa(LogicAnd), tr(LogicOr)}}
	assert.True(t, EvaluateChain(cfg, ctx).Visible)

	// A=true, B=false, C=false：((true && false) || false) = false
	b := tr("")
	b.Action = ActionShow
	cfg = &Config{Enabled: true, Rules: []Rule{b, fa(LogicAnd), fa(LogicOr)}}
	assert.False(t, EvaluateChain(cfg, ctx).Visible)

	// A=false, B=true（OR）, C=false（AND）：((false || true) && false) = false
	// 若存在 AND 优先级则会得到 true
	cfg = &Config{Enabled: true, Rules: []Rule{a, tr(LogicOr), fa(LogicAnd)}}
	assert.False(t, EvaluateChain(cfg, ctx).Visible)
}

// TestEvaluateChainFirstRuleActionGoverns 后续规则的 Action 被忽略
func TestEvaluateChainFirstRuleActionGoverns(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"t": "yes"}}
	cfg := &Config{
		Enabled: true,
		Rules: []Rule{
			{Action: ActionShow, Operator: OpEquals, FieldRef: "@value.t", CompareValue: "yes"},
			{Action: ActionHide, Operator: OpEquals, FieldRef: "@value.t", CompareValue: "yes", LogicOperator: LogicAnd},
		},
	}

	res := EvaluateChain(cfg, ctx)
	assert.True(t, res.Visible)
}

// TestEvaluateChainDisabled 禁用或空链恒可见
func TestEvaluateChainDisabled(t *testing.T) {
	ctx := &token.RuntimeContext{}

	assert.True(t, EvaluateChain(nil, ctx).Visible)
	assert.True(t, EvaluateChain(&Config{Enabled: false}, ctx).Visible)
	assert.True(t, EvaluateChain(&Config{Enabled: true, Rules: nil}, ctx).Visible)
}
