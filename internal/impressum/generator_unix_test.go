//go:build unix

package impressum

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Umask is process-wide, so this test must not run in parallel.
func TestGenerate_ModeIgnoresUmask(t *testing.T) {
	old := syscall.Umask(0o077)
	defer syscall.Umask(old)

	f := newFixture(t, fullTemplate)

	_, err := f.generator().Generate()
	require.NoError(t, err)

	info, err := os.Stat(f.opts.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
