package token

import (
	"regexp"
	"strings"
)

// RuntimeContext 运行时数据上下文
// 承载文档渲染时可供 token 取值的四个数据源
type RuntimeContext struct {
	Lead  map[string]any `json:"lead"`  // 客户数据
	Quote map[string]any `json:"quote"` // 报价数据
	Org   map[string]any `json:"org"`   // 组织数据
	Tbl   map[string]any `json:"tbl"`   // 表单字段数据（扁平 key-value）
}

// token 语法
var (
	entityTokenRe = regexp.MustCompile(`^\{(lead|quote|org)\.([a-zA-Z0-9_.]+)\}$`)
	fieldTokenRe  = regexp.MustCompile(`^@(value|select)\.([a-zA-Z0-9_.-]+)$`)
)

// Resolve 解析单个 token 引用
// 返回解析到的值和是否命中；无法识别的语法或缺失的路径返回 (nil, false)
func Resolve(ref string, ctx *RuntimeContext) (any, bool) {
	if ctx == nil {
		return nil, false
	}

	// 1. 实体 token：{lead.xxx} / {quote.xxx} / {org.xxx}，支持点路径下钻
	if m := entityTokenRe.FindStringSubmatch(ref); m != nil {
		var root map[string]any
		switch m[1] {
		case "lead":
			root = ctx.Lead
		case "quote":
			root = ctx.Quote
		case "org":
			root = ctx.Org
		}
		return drill(root, m[2])
	}

	// 2. 字段 token：@value.xxx / @select.xxx，在 tbl 中扁平查找
	if m := fieldTokenRe.FindStringSubmatch(ref); m != nil {
		if ctx.Tbl == nil {
			return nil, false
		}
		v, ok := ctx.Tbl[m[2]]
		return v, ok
	}

	// 3. 其他语法一律视为未定义
	return nil, false
}

// drill 沿点路径在嵌套 map 中下钻
func drill(root map[string]any, path string) (any, bool) {
	if root == nil {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var cur any = root
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
