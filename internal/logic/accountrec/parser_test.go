package accountrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-core-sol/internal/errs"
)

// 规范样本：type=1, authority=0xFFFFFFFF, 名称长度 5，缓冲区尾部带多余名称字节
var sampleBuffer = []byte{1, 0, 0, 0, 255, 255, 255, 255, 5, 0, 0, 0, 83, 79, 76, 47, 85, 83, 68, 67}

// 测试具体样本：严格按长度字节读取 5 字节名称，不读取其后的多余字节
func TestParse_SampleBuffer(t *testing.T) {
	record, err := Parse(sampleBuffer)
	require.NoError(t, err)

	assert.Equal(t, byte(1), record.Kind)
	assert.Equal(t, uint32(0xFFFFFFFF), record.Authority)
	assert.Equal(t, "SOL/U", record.Name)
	assert.Len(t, record.Name, 5)
}

func TestParse_ExactLengthBuffer(t *testing.T) {
	// 缓冲区正好 12+N 字节
	buf := []byte{2, 0, 0, 0, 7, 0, 0, 0, 3, 0, 0, 0, 'S', 'O', 'L'}
	record, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, byte(2), record.Kind)
	assert.Equal(t, uint32(7), record.Authority)
	assert.Equal(t, "SOL", record.Name)
}

func TestParse_EmptyName(t *testing.T) {
	buf := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	record, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, "", record.Name)
}

// 固定头部不完整 → TruncatedInputError
func TestParse_ShortFixedHeader(t *testing.T) {
	for cut := 0; cut < 12; cut++ {
		_, err := Parse(sampleBuffer[:cut])
		var truncated *errs.TruncatedInputError
		require.ErrorAs(t, err, &truncated, "cut=%d", cut)
		assert.Equal(t, cut, truncated.Got)
		assert.Equal(t, 12, truncated.Want)
	}
}

// 长度字节声明的名称越过缓冲区末尾 → TruncatedInputError
func TestParse_NameOverrunsBuffer(t *testing.T) {
	buf := []byte{1, 0, 0, 0, 0, 0, 0, 0, 200, 0, 0, 0, 'S', 'O', 'L'}
	_, err := Parse(buf)
	var truncated *errs.TruncatedInputError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, len(buf), truncated.Got)
	assert.Equal(t, 12+200, truncated.Want)
}

// 名称字节不是合法 UTF-8 → InvalidEncodingError
func TestParse_InvalidUTF8Name(t *testing.T) {
	buf := []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0xFF, 0xFE}
	_, err := Parse(buf)
	var encoding *errs.InvalidEncodingError
	require.ErrorAs(t, err, &encoding)
	assert.Equal(t, "name", encoding.Field)
}

// 解析是纯读取操作，不修改输入缓冲区
func TestParse_DoesNotMutateInput(t *testing.T) {
	buf := make([]byte, len(sampleBuffer))
	copy(buf, sampleBuffer)

	_, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, sampleBuffer, buf)
}
