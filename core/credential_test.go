package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvCredentialResolver(t *testing.T) {
	t.Setenv("STUDY_TEST_PRIMARY", "")
	t.Setenv("STUDY_TEST_FALLBACK", "  key-123 ")
	r := NewEnvCredentialResolver("STUDY_TEST_PRIMARY", "STUDY_TEST_FALLBACK")

	cred, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Credential("key-123"), cred)

	t.Setenv("STUDY_TEST_PRIMARY", "rotated")
	cred, err = r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Credential("rotated"), cred)
}

func TestEnvCredentialResolverMissing(t *testing.T) {
	t.Setenv("STUDY_TEST_EMPTY", "   ")
	r := NewEnvCredentialResolver("STUDY_TEST_EMPTY", "STUDY_TEST_UNSET_VARIABLE")

	_, err := r.Resolve()
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestStaticCredential(t *testing.T) {
	_, err := StaticCredential("").Resolve()
	assert.ErrorIs(t, err, ErrMissingCredential)

	cred, err := StaticCredential("abc").Resolve()
	require.NoError(t, err)
	assert.Equal(t, Credential("abc"), cred)
}
