package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unifiedSample = `--- src/util.ts
+++ src/util.ts
@@ -1,3 +1,4 @@
+import { x } from './x';
 export function f() {
   return 1;
 }
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Format
	}{
		{"empty", "", FormatUnknown},
		{"prose only", "I made the change you asked for.", FormatUnknown},
		{"unified", unifiedSample, FormatUnified},
		{"git", "diff --git a/src/util.ts b/src/util.ts\nindex abc..def 100644\n--- a/src/util.ts\n+++ b/src/util.ts\n@@ -1,1 +1,1 @@\n-a\n+b\n", FormatGit},
		{"fenced", "Here is the diff:\n```diff\n" + unifiedSample + "```\n", FormatFenced},
		{"search replace", "File: src/util.ts\n<<<<<<< SEARCH\nreturn 1;\n=======\nreturn 2;\n>>>>>>> REPLACE\n", FormatSearchReplace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.raw))
		})
	}
}

func TestNormalizeUnifiedIsIdentityOnFormat(t *testing.T) {
	out, err := Normalize(unifiedSample)
	require.NoError(t, err)
	assert.Equal(t, unifiedSample, out)
	assert.Equal(t, FormatUnified, DetectFormat(out))
}

func TestNormalizeGitStripsHeaders(t *testing.T) {
	raw := "diff --git a/src/util.ts b/src/util.ts\nindex abc..def 100644\n--- a/src/util.ts\n+++ b/src/util.ts\n@@ -1,1 +1,1 @@\n-a\n+b\n"
	out, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "--- src/util.ts\n+++ src/util.ts\n@@ -1,1 +1,1 @@\n-a\n+b\n", out)
	assert.Equal(t, FormatUnified, DetectFormat(out))
}

func TestNormalizeFenced(t *testing.T) {
	raw := "Applying the fix:\n```diff\n" + unifiedSample + "```\nDone."
	out, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatUnified, DetectFormat(out))
	assert.Contains(t, out, "+import { x } from './x';")
}

func TestNormalizeSearchReplace(t *testing.T) {
	raw := "File: src/util.ts\n<<<<<<< SEARCH\nreturn 1;\n=======\nreturn 2;\n>>>>>>> REPLACE\n"
	out, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatUnified, DetectFormat(out))
	assert.Contains(t, out, "--- src/util.ts")
	assert.Contains(t, out, "-return 1;")
	assert.Contains(t, out, "+return 2;")
}

func TestNormalizeSearchReplaceWithoutFileMarker(t *testing.T) {
	raw := "<<<<<<< SEARCH\na\n=======\nb\n>>>>>>> REPLACE\n"
	_, err := Normalize(raw)
	assert.ErrorContains(t, err, "no file marker")
}

func TestNormalizeUnknown(t *testing.T) {
	_, err := Normalize("no diff here")
	assert.ErrorContains(t, err, "unrecognized diff format")
	_, err = Normalize("")
	assert.Error(t, err)
}

func TestSplitFilesAndStats(t *testing.T) {
	diff := unifiedSample +
		"--- src/other.ts\n+++ src/other.ts\n@@ -1,2 +1,1 @@\n-old\n-older\n+new\n"
	files := SplitFiles(diff)
	require.Len(t, files, 2)
	assert.Equal(t, "src/util.ts", files[0].Path)
	assert.Equal(t, 1, files[0].LinesAdded)
	assert.Equal(t, 0, files[0].LinesDeleted)
	assert.Equal(t, "src/other.ts", files[1].Path)
	assert.Equal(t, 1, files[1].LinesAdded)
	assert.Equal(t, 2, files[1].LinesDeleted)

	assert.Equal(t, []string{"src/other.ts", "src/util.ts"}, Files(diff))
	assert.Equal(t, 4, ChangedLines(diff))
}
