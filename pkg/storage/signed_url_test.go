package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerRoundTrip(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Sign("export-1", "roster/report.csv")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ref, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "export-1", ref.ID)
	require.Equal(t, "roster/report.csv", ref.Path)
	require.True(t, expiresAt.Equal(ref.ExpiresAt))
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	token, _, err := signer.Sign("export-1", "roster/report.csv")
	require.NoError(t, err)

	signer.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = signer.Verify(token)
	require.Error(t, err)
}

func TestSignedURLSignerTampered(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Sign("export-1", "roster/report.csv")
	require.NoError(t, err)

	other := NewSignedURLSigner("other-secret", time.Hour)
	_, err = other.Verify(token)
	require.Error(t, err)

	_, err = signer.Verify("not-a-token")
	require.Error(t, err)
}
