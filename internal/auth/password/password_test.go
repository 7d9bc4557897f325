package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("hunter22")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.NotContains(t, encoded, "hunter22")
	assert.True(t, Verify("hunter22", encoded))
	assert.False(t, Verify("hunter23", encoded))
}

func TestHashUsesUniqueSalt(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerifyRejectsMalformedEncoding(t *testing.T) {
	assert.False(t, Verify("whatever", ""))
	assert.False(t, Verify("whatever", "plaintext"))
	assert.False(t, Verify("whatever", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
}
