package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainKeyVerifier(t *testing.T) {
	verify := PlainKeyVerifier("TopSecretApiKey")

	assert.True(t, verify("TopSecretApiKey"))
	assert.False(t, verify("topsecretapikey"))
	assert.False(t, verify(""))
	assert.False(t, verify("TopSecretApiKey "))
}

func TestBcryptKeyVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	verify := BcryptKeyVerifier(string(hash))
	assert.True(t, verify("s3cret"))
	assert.False(t, verify("S3cret"))
	assert.False(t, verify(""))
}

func TestBcryptKeyVerifierBadHash(t *testing.T) {
	verify := BcryptKeyVerifier("not-a-hash")
	assert.False(t, verify("not-a-hash"))
}
