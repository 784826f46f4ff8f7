package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mautops/compose-gin/internal/token"
)

// TestLiveInterpolation live 模式替换可解析 token
func TestLiveInterpolation(t *testing.T) {
	ctx := &token.RuntimeContext{
		Lead: map[string]any{
			"firstName": "Marie",
			"company":   map[string]any{"name": "Acme SA"},
		},
		Tbl: map[string]any{"surface_m2": 120.0},
	}

	out := Text("Bonjour {lead.firstName}, surface: @value.surface_m2 m²", ctx, true)
	assert.Equal(t, "Bonjour Marie, surface: 120 m²", out)

	// 点路径
	out = Text("Société: {lead.company.name}", ctx, true)
	assert.Equal(t, "Société: Acme SA", out)
}

// TestUnresolvedTokenKeptVerbatim 未解析的 token 原样保留
func TestUnresolvedTokenKeptVerbatim(t *testing.T) {
	ctx := &token.RuntimeContext{Lead: map[string]any{}}

	out := Text("Bonjour {lead.firstName}", ctx, true)
	assert.Equal(t, "Bonjour {lead.firstName}", out)

	// 可解析与不可解析混合
	ctx.Lead["firstName"] = "Marie"
	out = Text("{lead.firstName} {lead.lastName}", ctx, true)
	assert.Equal(t, "Marie {lead.lastName}", out)
}

// TestEditModeIdentity 编辑模式是恒等函数
func TestEditModeIdentity(t *testing.T) {
	ctx := &token.RuntimeContext{Lead: map[string]any{"firstName": "Marie"}}

	text := "Bonjour {lead.firstName}"
	assert.Equal(t, text, Text(text, ctx, false))
	assert.Equal(t, text, Text(text, nil, true))
}

// TestNonTokenTextUntouched 非 token 文本不受影响
func TestNonTokenTextUntouched(t *testing.T) {
	ctx := &token.RuntimeContext{Tbl: map[string]any{"x": "1"}}

	text := "Prix: 100 € {hors.grammaire} contact@exemple.be"
	assert.Equal(t, text, Text(text, ctx, true))
	assert.Equal(t, "", Text("", ctx, true))
}
