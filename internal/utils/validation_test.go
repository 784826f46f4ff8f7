package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateDocumentName 测试文档名称验证
func TestValidateDocumentName(t *testing.T) {
	assert.NoError(t, ValidateDocumentName("Devis fenêtres"))
	assert.NoError(t, ValidateDocumentName("  Facture 2026  "))

	assert.ErrorIs(t, ValidateDocumentName(""), ErrEmptyName)
	assert.ErrorIs(t, ValidateDocumentName("   "), ErrEmptyName)
	assert.ErrorIs(t, ValidateDocumentName(strings.Repeat("a", 256)), ErrNameTooLong)
	assert.ErrorIs(t, ValidateDocumentName("<script>alert(1)</script>"), ErrDangerousChars)
	assert.ErrorIs(t, ValidateDocumentName("devis'; DROP TABLE documents"), ErrDangerousChars)
}

// TestValidateDocumentID 测试文档 ID 验证
func TestValidateDocumentID(t *testing.T) {
	assert.NoError(t, ValidateDocumentID("doc-123"))
	assert.NoError(t, ValidateDocumentID("doc_abc_456"))

	assert.ErrorIs(t, ValidateDocumentID(""), ErrEmptyID)
	assert.ErrorIs(t, ValidateDocumentID("doc/123"), ErrInvalidIDFormat)
	assert.ErrorIs(t, ValidateDocumentID("doc 123"), ErrInvalidIDFormat)
	assert.ErrorIs(t, ValidateDocumentID(strings.Repeat("a", 65)), ErrIDTooLong)
}

// TestSanitizeString 测试字符串清理
func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeString("<b>bold</b>"))

	// 控制字符被移除,换行和制表符保留
	assert.Equal(t, "a\nb\tc", SanitizeString("a\nb\tc\x00"))
}

// TestTrimAndValidate 测试清理并验证
func TestTrimAndValidate(t *testing.T) {
	got, err := TrimAndValidate("  Devis  ", 255)
	require.NoError(t, err)
	assert.Equal(t, "Devis", got)

	_, err = TrimAndValidate("   ", 255)
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = TrimAndValidate(strings.Repeat("a", 10), 5)
	assert.ErrorIs(t, err, ErrStringTooLong)
}

// TestValidateSortField 测试排序字段验证
func TestValidateSortField(t *testing.T) {
	assert.NoError(t, ValidateSortField("created_at"))
	assert.NoError(t, ValidateSortField("documents.name"))

	assert.Error(t, ValidateSortField(""))
	assert.Error(t, ValidateSortField("name; DROP TABLE documents"))
	assert.Error(t, ValidateSortField("name UNION SELECT"))
}

// TestValidateSortOrder 测试排序方向验证
func TestValidateSortOrder(t *testing.T) {
	assert.NoError(t, ValidateSortOrder("asc"))
	assert.NoError(t, ValidateSortOrder("DESC"))
	assert.Error(t, ValidateSortOrder("sideways"))
}
