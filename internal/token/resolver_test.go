package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 测试运行时上下文
func testContext() *RuntimeContext {
	return &RuntimeContext{
		Lead: map[string]any{
			"name": "Acme SA",
			"contact": map[string]any{
				"email": "info@acme.example",
				"address": map[string]any{
					"city": "Bruxelles",
				},
			},
		},
		Quote: map[string]any{
			"total": 2500.0,
		},
		Org: map[string]any{
			"name": "2Thier",
		},
		Tbl: map[string]any{
			"surface_m2":   120.0,
			"type-projet":  "renovation",
			"client.notes": "rappeler lundi",
		},
	}
}

// TestResolveEntityToken 测试实体 token 解析
func TestResolveEntityToken(t *testing.T) {
	ctx := testContext()

	v, ok := Resolve("{lead.name}", ctx)
	assert.True(t, ok)
	assert.Equal(t, "Acme SA", v)

	// 点路径下钻
	v, ok = Resolve("{lead.contact.address.city}", ctx)
	assert.True(t, ok)
	assert.Equal(t, "Bruxelles", v)

	v, ok = Resolve("{quote.total}", ctx)
	assert.True(t, ok)
	assert.Equal(t, 2500.0, v)

	v, ok = Resolve("{org.name}", ctx)
	assert.True(t, ok)
	assert.Equal(t, "2Thier", v)
}

// TestResolveFieldToken 测试字段 token 解析
func TestResolveFieldToken(t *testing.T) {
	ctx := testContext()

	v, ok := Resolve("@value.surface_m2", ctx)
	assert.True(t, ok)
	assert.Equal(t, 120.0, v)

	v, ok = Resolve("@select.type-projet", ctx)
	assert.True(t, ok)
	assert.Equal(t, "renovation", v)

	// 字段 token 在 tbl 中扁平查找，key 中的点不触发下钻
	v, ok = Resolve("@value.client.notes", ctx)
	assert.True(t, ok)
	assert.Equal(t, "rappeler lundi", v)
}

// TestResolveMissing 测试缺失路径与非法语法
func TestResolveMissing(t *testing.T) {
	ctx := testContext()

	_, ok := Resolve("{lead.missing}", ctx)
	assert.False(t, ok)

	// 路径中途不是对象
	_, ok = Resolve("{lead.name.sub}", ctx)
	assert.False(t, ok)

	_, ok = Resolve("@value.absent", ctx)
	assert.False(t, ok)

	// 不支持的语法
	_, ok = Resolve("{user.name}", ctx)
	assert.False(t, ok)
	_, ok = Resolve("lead.name", ctx)
	assert.False(t, ok)
	_, ok = Resolve("@other.key", ctx)
	assert.False(t, ok)
	_, ok = Resolve("", ctx)
	assert.False(t, ok)
}

// TestResolveNilContext 测试空上下文
func TestResolveNilContext(t *testing.T) {
	_, ok := Resolve("{lead.name}", nil)
	assert.False(t, ok)

	_, ok = Resolve("@value.x", &RuntimeContext{})
	assert.False(t, ok)
}

// TestStringify 测试值到字符串的转换
func TestStringify(t *testing.T) {
	assert.Equal(t, "2500", Stringify(2500.0))
	assert.Equal(t, "12.5", Stringify(12.5))
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "", Stringify(nil))
}
