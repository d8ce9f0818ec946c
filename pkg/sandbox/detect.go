package sandbox

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Stack describes what the workspace probe found.
type Stack struct {
	PackageManager string // npm, yarn, pnpm, pip, go
	HasTypeScript  bool
	HasBuildScript bool
	TestScript     string // package.json test script, if any
}

// markerFiles maps lock files and manifests to their package manager, in
// probe order. The first hit wins, so more specific lock files go first.
var markerFiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"package-lock.json", "npm"},
	{"package.json", "npm"},
	{"requirements.txt", "pip"},
	{"pyproject.toml", "pip"},
	{"go.mod", "go"},
}

// DetectStack probes a workspace for marker files. Unknown layouts fall
// back to npm, the conservative default for the repos this system targets.
func DetectStack(dir string) Stack {
	stack := Stack{PackageManager: "npm"}
	for _, m := range markerFiles {
		if fileExists(filepath.Join(dir, m.file)) {
			stack.PackageManager = m.manager
			break
		}
	}

	if fileExists(filepath.Join(dir, "tsconfig.json")) {
		stack.HasTypeScript = true
	}

	if raw, err := os.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		var pkg struct {
			Scripts map[string]string `json:"scripts"`
		}
		if json.Unmarshal(raw, &pkg) == nil {
			_, stack.HasBuildScript = pkg.Scripts["build"]
			stack.TestScript = pkg.Scripts["test"]
		}
	}
	return stack
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
