package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	sub, err := FS()
	require.NoError(t, err)

	data, err := fs.ReadFile(sub, "style.css")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
