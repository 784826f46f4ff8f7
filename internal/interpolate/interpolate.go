package interpolate

import (
	"regexp"

	"github.com/mautops/compose-gin/internal/token"
)

// 文本中出现的 token（非锚定，匹配文本内任意位置）
var (
	entityTokenRe = regexp.MustCompile(`\{(lead|quote|org)\.[a-zA-Z0-9_.]+\}`)
	fieldTokenRe  = regexp.MustCompile(`@(value|select)\.[a-zA-Z0-9_.-]+`)
)

// Text 对文本做变量替换
// live 模式下替换所有可解析的 token，未解析到的 token 原样保留；
// 编辑模式（live=false 或上下文为空）是恒等函数，作者能看到原始 token
func Text(text string, ctx *token.RuntimeContext, live bool) string {
	if !live || ctx == nil || text == "" {
		return text
	}

	replace := func(match string) string {
		v, ok := token.Resolve(match, ctx)
		if !ok || v == nil {
			return match
		}
		return token.Stringify(v)
	}

	out := entityTokenRe.ReplaceAllStringFunc(text, replace)
	return fieldTokenRe.ReplaceAllStringFunc(out, replace)
}
