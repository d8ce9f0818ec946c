// Package sandbox isolates everything that touches a real shell: the
// validated command executor and the Foreman scratch workspace.
package sandbox

import (
	"fmt"
	"regexp"
	"strings"
)

// CommandKind enumerates the allowed command shapes.
type CommandKind string

// Allowed command kinds. Custom requires explicit acknowledgment and the
// allow_custom_commands config flag.
const (
	CmdInstallDeps     CommandKind = "install-deps"
	CmdMigrate         CommandKind = "migrate"
	CmdGenerate        CommandKind = "generate"
	CmdCreateDirectory CommandKind = "create-directory"
	CmdTypeCheck       CommandKind = "type-check"
	CmdLintFix         CommandKind = "lint-fix"
	CmdFormat          CommandKind = "format"
	CmdCustom          CommandKind = "custom"

	// cmdGit and cmdScript are internal plumbing for the Foreman's
	// clone/apply/test steps. They bypass the custom-command gate but not
	// the denylist.
	cmdGit    CommandKind = "git"
	cmdScript CommandKind = "script"
)

// Input whitelists. Anything outside these character classes is rejected
// before the command string is even assembled.
var (
	packageNameRe = regexp.MustCompile(`^[a-zA-Z0-9@/_.-]+$`)
	relPathRe     = regexp.MustCompile(`^[a-zA-Z0-9/_.-]+$`)
	managerRe     = regexp.MustCompile(`^(npm|yarn|pnpm|pip|go)$`)
	scriptNameRe  = regexp.MustCompile(`^[a-zA-Z0-9:_-]+$`)
)

// Command is a validated executable action. Construct via the typed
// constructors; the zero value is not runnable.
type Command struct {
	Kind CommandKind
	Argv []string

	// CustomAcknowledged must be set by the caller of Custom to confirm
	// the command was reviewed. Without it a custom command never runs.
	CustomAcknowledged bool
}

// String renders the resolved command line for denylist matching and logs.
func (c Command) String() string {
	out := ""
	for i, a := range c.Argv {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}

// InstallDeps installs dependencies with the given package manager.
// Extra packages are validated against the package-name whitelist.
func InstallDeps(manager string, packages ...string) (Command, error) {
	if !managerRe.MatchString(manager) {
		return Command{}, fmt.Errorf("unsupported package manager %q", manager)
	}
	for _, p := range packages {
		if !packageNameRe.MatchString(p) {
			return Command{}, fmt.Errorf("invalid package name %q", p)
		}
	}
	var argv []string
	switch manager {
	case "npm":
		argv = append([]string{"npm", "install"}, packages...)
	case "yarn":
		argv = append([]string{"yarn", "add"}, packages...)
		if len(packages) == 0 {
			argv = []string{"yarn", "install"}
		}
	case "pnpm":
		argv = append([]string{"pnpm", "add"}, packages...)
		if len(packages) == 0 {
			argv = []string{"pnpm", "install"}
		}
	case "pip":
		argv = append([]string{"pip", "install"}, packages...)
		if len(packages) == 0 {
			argv = []string{"pip", "install", "-r", "requirements.txt"}
		}
	case "go":
		argv = append([]string{"go", "get"}, packages...)
		if len(packages) == 0 {
			argv = []string{"go", "mod", "download"}
		}
	}
	return Command{Kind: CmdInstallDeps, Argv: argv}, nil
}

// Migrate runs the project's migrate script.
func Migrate(manager string) (Command, error) {
	return runScript(CmdMigrate, manager, "migrate")
}

// Generate runs the project's codegen script.
func Generate(manager string) (Command, error) {
	return runScript(CmdGenerate, manager, "generate")
}

// CreateDirectory makes a directory inside the workspace.
func CreateDirectory(relPath string) (Command, error) {
	if !relPathRe.MatchString(relPath) || relPath[0] == '/' || strings.Contains(relPath, "..") {
		return Command{}, fmt.Errorf("invalid directory path %q", relPath)
	}
	return Command{Kind: CmdCreateDirectory, Argv: []string{"mkdir", "-p", relPath}}, nil
}

// TypeCheck runs the TypeScript compiler without emitting output.
func TypeCheck() Command {
	return Command{Kind: CmdTypeCheck, Argv: []string{"npx", "tsc", "--noEmit"}}
}

// LintFix runs the linter in fix mode.
func LintFix() Command {
	return Command{Kind: CmdLintFix, Argv: []string{"npx", "eslint", ".", "--fix"}}
}

// Format runs the formatter.
func Format() Command {
	return Command{Kind: CmdFormat, Argv: []string{"npx", "prettier", "--write", "."}}
}

// Custom wraps an arbitrary argv. It only executes when the executor allows
// custom commands and acknowledged is true; the denylist still applies.
func Custom(argv []string, acknowledged bool) (Command, error) {
	if len(argv) == 0 {
		return Command{}, fmt.Errorf("custom command requires an argv")
	}
	return Command{Kind: CmdCustom, Argv: argv, CustomAcknowledged: acknowledged}, nil
}

func gitCommand(args ...string) Command {
	return Command{Kind: cmdGit, Argv: append([]string{"git"}, args...)}
}

func scriptCommand(manager, script string) Command {
	switch manager {
	case "yarn", "pnpm":
		return Command{Kind: cmdScript, Argv: []string{manager, "run", script}}
	default:
		return Command{Kind: cmdScript, Argv: []string{"npm", "run", script}}
	}
}

func runScript(kind CommandKind, manager, script string) (Command, error) {
	if !managerRe.MatchString(manager) {
		return Command{}, fmt.Errorf("unsupported package manager %q", manager)
	}
	if !scriptNameRe.MatchString(script) {
		return Command{}, fmt.Errorf("invalid script name %q", script)
	}
	switch manager {
	case "yarn", "pnpm":
		return Command{Kind: kind, Argv: []string{manager, "run", script}}, nil
	default:
		return Command{Kind: kind, Argv: []string{"npm", "run", script}}, nil
	}
}
