package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDetectStack(t *testing.T) {
	t.Run("pnpm lock wins over package.json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pnpm-lock.yaml", "")
		writeFile(t, dir, "package.json", `{"scripts":{"build":"tsc","test":"jest"}}`)
		writeFile(t, dir, "tsconfig.json", "{}")

		stack := DetectStack(dir)
		assert.Equal(t, "pnpm", stack.PackageManager)
		assert.True(t, stack.HasTypeScript)
		assert.True(t, stack.HasBuildScript)
		assert.Equal(t, "jest", stack.TestScript)
	})

	t.Run("go module", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "go.mod", "module example.com/x\n")
		assert.Equal(t, "go", DetectStack(dir).PackageManager)
	})

	t.Run("empty workspace falls back to npm", func(t *testing.T) {
		stack := DetectStack(t.TempDir())
		assert.Equal(t, "npm", stack.PackageManager)
		assert.False(t, stack.HasTypeScript)
		assert.False(t, stack.HasBuildScript)
	})
}

func TestHasRelatedTests(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	writeFile(t, dir, "src/util.ts", "export const x = 1;")
	writeFile(t, dir, "src/util.test.ts", "test('x', () => {});")
	writeFile(t, dir, "src/other.ts", "export const y = 2;")

	r := NewWorkspaceRunner(NewExecutor(false, true), dir, 0)
	assert.True(t, r.HasRelatedTests([]string{"src/util.ts"}))
	assert.False(t, r.HasRelatedTests([]string{"src/other.ts"}))
	assert.False(t, r.HasRelatedTests(nil))
}
