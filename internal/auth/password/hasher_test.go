package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"))

	assert.True(t, h.Verify("secret1", digest))
	assert.False(t, h.Verify("secret2", digest))
	assert.False(t, h.Verify("", digest))
}

func TestBcryptHasher_DistinctDigests(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	// Salted: hashing the same plaintext twice must not repeat.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
}

func TestBcryptHasher_GarbageDigest(t *testing.T) {
	h := NewBcryptHasher()
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-digest"))
}
