package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuiltinRegistry 内置目录基本结构
func TestBuiltinRegistry(t *testing.T) {
	reg := Builtin()

	require.NotEmpty(t, reg.All())

	// 核心模块必须存在
	for _, id := range []string{
		"TITLE", "TEXT_BLOCK", "IMAGE", "BACKGROUND", "PRICING_TABLE",
		"SIGNATURE_BLOCK", "TOTALS_SUMMARY", "DOCUMENT_FOOTER", "PAGE_BREAK",
	} {
		d, ok := reg.Get(id)
		require.True(t, ok, "module %s missing", id)
		assert.Equal(t, id, d.ID)
		assert.NotEmpty(t, d.Name)
	}

	_, ok := reg.Get("UNKNOWN_KIND")
	assert.False(t, ok)
}

// TestBuiltinIDsUnique 模块 ID 不重复
func TestBuiltinIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Builtin().All() {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}

// TestDefaultThemeID 第一项主题为默认主题
func TestDefaultThemeID(t *testing.T) {
	reg := Builtin()

	title, _ := reg.Get("TITLE")
	assert.Equal(t, "modern", title.DefaultThemeID())

	bg, _ := reg.Get("BACKGROUND")
	assert.Equal(t, "solid", bg.DefaultThemeID())

	// 无主题的模块回退 "default"
	pb, _ := reg.Get("PAGE_BREAK")
	assert.Equal(t, "default", pb.DefaultThemeID())
}

// TestByCategory 分类查询
func TestByCategory(t *testing.T) {
	reg := Builtin()

	data := reg.ByCategory(CategoryData)
	assert.NotEmpty(t, data)
	for _, d := range data {
		assert.Equal(t, CategoryData, d.Category)
	}

	cats := reg.Categories()
	assert.Contains(t, cats, CategoryContent)
	assert.Contains(t, cats, CategoryLayout)
	assert.Contains(t, cats, CategoryMedia)
}

// TestBackgroundNotResizable BACKGROUND 不可调整尺寸
func TestBackgroundNotResizable(t *testing.T) {
	bg, ok := Builtin().Get("BACKGROUND")
	require.True(t, ok)
	assert.False(t, bg.Resizable)
	assert.Equal(t, "color", bg.DefaultConfig["type"])
}
