package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkey_Base58RoundTrip(t *testing.T) {
	const addr = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	p, err := TryPubkeyFromBase58(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, p.String())
	assert.False(t, p.IsZero())
}

func TestTryPubkeyFromBase58_Invalid(t *testing.T) {
	// 非法 base58 字符
	_, err := TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)

	// 长度不足 32 字节
	_, err = TryPubkeyFromBase58("abc")
	assert.Error(t, err)
}

func TestSignature_Short(t *testing.T) {
	var sig Signature
	for i := range sig {
		sig[i] = byte(i)
	}
	assert.Len(t, sig.Short(), 8)
	assert.Equal(t, sig.String()[:8], sig.Short())
}
