package condition

import (
	"strconv"
	"strings"

	"github.com/mautops/compose-gin/internal/token"
)

// Action 条件链的动作类型
type Action string

const (
	ActionShow       Action = "SHOW"        // 条件满足时显示模块
	ActionHide       Action = "HIDE"        // 条件满足时隐藏模块
	ActionAddContent Action = "ADD_CONTENT" // 条件满足时追加内容，模块始终可见
)

// LogicOperator 规则之间的逻辑连接符
type LogicOperator string

const (
	LogicAnd LogicOperator = "AND"
	LogicOr  LogicOperator = "OR"
)

// Operator 规则比较操作符
type Operator string

const (
	OpIsEmpty        Operator = "IS_EMPTY"
	OpIsNotEmpty     Operator = "IS_NOT_EMPTY"
	OpEquals         Operator = "EQUALS"
	OpNotEquals      Operator = "NOT_EQUALS"
	OpContains       Operator = "CONTAINS"
	OpNotContains    Operator = "NOT_CONTAINS"
	OpGreaterThan    Operator = "GREATER_THAN"
	OpLessThan       Operator = "LESS_THAN"
	OpGreaterOrEqual Operator = "GREATER_OR_EQUAL"
	OpLessOrEqual    Operator = "LESS_OR_EQUAL"
)

// Rule 单条条件规则
// 只有第一条规则的 Action 决定整条链的动作，后续规则的 Action 被忽略
type Rule struct {
	Action        Action        `json:"action,omitempty"`        // 链动作（仅首条规则生效）
	Operator      Operator      `json:"operator"`                // 比较操作符
	FieldRef      string        `json:"fieldRef"`                // token 引用字符串
	CompareValue  any           `json:"compareValue,omitempty"`  // 比较值
	LogicOperator LogicOperator `json:"logicOperator,omitempty"` // 与前序结果的连接符（首条规则无）
}

// Config 条件显示配置
type Config struct {
	Enabled     bool   `json:"enabled"`
	Rules       []Rule `json:"rules,omitempty"`
	ShowContent string `json:"showContent,omitempty"` // 条件满足时的替代内容
	HideContent string `json:"hideContent,omitempty"` // 条件不满足时的替代内容
	AddContent  string `json:"addContent,omitempty"`  // ADD_CONTENT 动作追加的内容
}

// ChainResult 条件链求值结果
type ChainResult struct {
	Visible bool   `json:"visible"`
	Content string `json:"content,omitempty"` // 替代或追加内容，空串表示无
}

// EvaluateRule 对单条规则求值
// 数据缺失是常态而非错误：未解析到的值在相等比较中按字符串 "undefined" 参与，
// 在子串比较中按空串参与，数值操作符遇到无法转换为数值的数据一律返回 false
func EvaluateRule(rule *Rule, ctx *token.RuntimeContext) bool {
	value, resolved := token.Resolve(rule.FieldRef, ctx)

	switch rule.Operator {
	case OpIsEmpty:
		return isEmpty(value, resolved)
	case OpIsNotEmpty:
		return !isEmpty(value, resolved)
	case OpEquals:
		return coerceString(value, resolved) == coerceString(rule.CompareValue, true)
	case OpNotEquals:
		return coerceString(value, resolved) != coerceString(rule.CompareValue, true)
	case OpContains:
		return strings.Contains(
			strings.ToLower(coerceSubstring(value, resolved)),
			strings.ToLower(coerceString(rule.CompareValue, true)),
		)
	case OpNotContains:
		return !strings.Contains(
			strings.ToLower(coerceSubstring(value, resolved)),
			strings.ToLower(coerceString(rule.CompareValue, true)),
		)
	case OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual:
		left, lok := coerceNumber(value, resolved)
		right, rok := coerceNumber(rule.CompareValue, true)
		if !lok || !rok {
			return false
		}
		switch rule.Operator {
		case OpGreaterThan:
			return left > right
		case OpLessThan:
			return left < right
		case OpGreaterOrEqual:
			return left >= right
		default:
			return left <= right
		}
	default:
		// 未知操作符视为满足,宁可误显示也不误隐藏
		return true
	}
}

// EvaluateChain 对整条条件链求值
// 规则从左到右结合，每条规则用自身的 LogicOperator 与累计结果连接，无优先级；
// 禁用或空规则链视为恒可见
func EvaluateChain(cfg *Config, ctx *token.RuntimeContext) ChainResult {
	if cfg == nil || !cfg.Enabled || len(cfg.Rules) == 0 {
		return ChainResult{Visible: true}
	}

	// 1. 从左到右折叠规则链,连接符缺失或无法识别的规则不参与折叠
	result := EvaluateRule(&cfg.Rules[0], ctx)
	for i := 1; i < len(cfg.Rules); i++ {
		switch cfg.Rules[i].LogicOperator {
		case LogicAnd:
			result = result && EvaluateRule(&cfg.Rules[i], ctx)
		case LogicOr:
			result = result || EvaluateRule(&cfg.Rules[i], ctx)
		}
	}

	// 2. 仅首条规则的动作决定可见性与替代内容
	switch cfg.Rules[0].Action {
	case ActionHide:
		if !result {
			return ChainResult{Visible: true, Content: cfg.ShowContent}
		}
		return ChainResult{Visible: false, Content: cfg.HideContent}
	case ActionAddContent:
		if result {
			return ChainResult{Visible: true, Content: cfg.AddContent}
		}
		return ChainResult{Visible: true, Content: cfg.HideContent}
	default: // SHOW
		if result {
			return ChainResult{Visible: true, Content: cfg.ShowContent}
		}
		return ChainResult{Visible: false, Content: cfg.HideContent}
	}
}

// isEmpty 判断值是否为空（未解析、null 或空字符串）
func isEmpty(v any, resolved bool) bool {
	if !resolved || v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// coerceString 按前端展示语义将值转为字符串
func coerceString(v any, resolved bool) string {
	if !resolved {
		return "undefined"
	}
	if v == nil {
		return "null"
	}
	return token.Stringify(v)
}

// coerceSubstring 按子串比较语义将值转为字符串,未解析或假值按空串处理
func coerceSubstring(v any, resolved bool) string {
	if !resolved || v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
	case float64:
		if x == 0 {
			return ""
		}
	case float32:
		if x == 0 {
			return ""
		}
	case int:
		if x == 0 {
			return ""
		}
	case int64:
		if x == 0 {
			return ""
		}
	}
	return token.Stringify(v)
}

// coerceNumber 将值转为数值，失败等价于 NaN
func coerceNumber(v any, resolved bool) (float64, bool) {
	if !resolved || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
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
