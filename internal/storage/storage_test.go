package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredName(t *testing.T) {
	name, err := StoredName("photo.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 32+len(".jpg"))

	other, err := StoredName("photo.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, name, other) // names are random, never the client's

	for _, bad := range []string{"script.exe", "notes.txt", "archive.tar.gz", "noextension", ""} {
		_, err := StoredName(bad)
		assert.ErrorIs(t, err, ErrInvalidUpload, "filename %q", bad)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("abc.png"))
	assert.Equal(t, "image/jpeg", ContentType("abc.jpeg"))
	assert.Equal(t, "image/gif", ContentType("abc.gif"))
	assert.Equal(t, "application/octet-stream", ContentType("abc.bin"))
}
