package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 所有业务错误类别，映射全性测试的枚举依据
var allDomainCodes = []DomainCode{
	CodeInsufficientBalance,
	CodeAccountNotFound,
	CodeUnauthorizedSigner,
	CodeInvalidAmount,
}

// 测试 DomainError → CompositeError 映射的全性与无损性：
// 每个类别都映射到 CompositeDomain 变体，且 Unwrap 能还原原始错误
func TestWrapDomain_TotalAndLossless(t *testing.T) {
	for _, code := range allDomainCodes {
		original := NewDomainError(code, "detail for %s", code)
		wrapped := WrapDomain(original)

		assert.Equal(t, CompositeDomain, wrapped.Kind, "code=%s", code)

		// errors.As 穿透组合层，还原的错误类别不变
		var recovered *DomainError
		require.True(t, errors.As(wrapped, &recovered), "code=%s", code)
		assert.Equal(t, code, recovered.Code)
		assert.Same(t, original, recovered)
	}
}

// 测试按 Code 匹配：同类别匹配，不同类别不匹配
func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewDomainError(CodeInvalidAmount, "amount=0")

	assert.True(t, errors.Is(err, &DomainError{Code: CodeInvalidAmount}))
	assert.False(t, errors.Is(err, &DomainError{Code: CodeAccountNotFound}))

	// 包装后仍可按类别匹配
	wrapped := WrapDomain(err)
	assert.True(t, errors.Is(wrapped, &DomainError{Code: CodeInvalidAmount}))
}

func TestCompositeError_NonDomainVariants(t *testing.T) {
	netErr := NewNetworkError("timeout")
	assert.Equal(t, CompositeNetwork, netErr.Kind)
	assert.Contains(t, netErr.Error(), "timeout")
	assert.Nil(t, netErr.Unwrap())

	cause := errors.New("bad payload")
	serErr := NewSerializationError(cause)
	assert.Equal(t, CompositeSerialization, serErr.Kind)
	assert.ErrorIs(t, serErr, cause)
}

// 编解码层错误必须携带定位信息（长度、原始字节、字段名）
func TestCodecErrors_CarryContext(t *testing.T) {
	truncated := &TruncatedInputError{Got: 8, Want: 12}
	assert.Contains(t, truncated.Error(), "8")
	assert.Contains(t, truncated.Error(), "12")

	unknown := &UnknownInstructionError{Opcode: 255}
	assert.Contains(t, unknown.Error(), "255")

	encoding := &InvalidEncodingError{Field: "name"}
	assert.Contains(t, encoding.Error(), "name")
}
