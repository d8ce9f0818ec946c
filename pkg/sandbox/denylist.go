package sandbox

import "regexp"

// deniedPattern is a pre-compiled denylist entry. Every resolved command
// string is matched against all of them before launch; a match blocks
// execution unconditionally.
type deniedPattern struct {
	Name  string
	Regex *regexp.Regexp
}

var denylist = []deniedPattern{
	// Privilege escalation.
	{"sudo", regexp.MustCompile(`(^|\s)sudo(\s|$)`)},
	{"su-root", regexp.MustCompile(`(^|\s)su(\s+-)?(\s+root)?\s*$`)},
	{"setuid-chmod", regexp.MustCompile(`chmod\s+[ugo]*\+?s`)},

	// Remote content piped into a shell.
	{"curl-pipe-shell", regexp.MustCompile(`curl[^|;&]*\|\s*(ba|z|da)?sh`)},
	{"wget-pipe-shell", regexp.MustCompile(`wget[^|;&]*\|\s*(ba|z|da)?sh`)},

	// Recursive or device-level deletes.
	{"rm-rf", regexp.MustCompile(`rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+`)},
	{"dd-device", regexp.MustCompile(`dd\s+[^;|&]*of=/dev/`)},
	{"mkfs", regexp.MustCompile(`(^|\s)mkfs(\.|(\s|$))`)},

	// Credential material.
	{"ssh-keys", regexp.MustCompile(`(^|[\s/"'])\.ssh(/|\s|$)`)},
	{"aws-credentials", regexp.MustCompile(`\.aws/credentials`)},
	{"etc-passwd", regexp.MustCompile(`/etc/(passwd|shadow)`)},
	{"dotenv-read", regexp.MustCompile(`(cat|cp|curl|scp)\s+[^;|&]*\.env(\s|$)`)},

	// Process control.
	{"kill", regexp.MustCompile(`(^|\s)(kill|pkill|killall)(\s|$)`)},

	// Network listeners and reverse shells.
	{"netcat-listen", regexp.MustCompile(`(^|\s)(nc|ncat|netcat)\s+[^;|&]*-l`)},
	{"dev-tcp", regexp.MustCompile(`/dev/tcp/`)},

	// Host lifecycle.
	{"shutdown", regexp.MustCompile(`(^|\s)(shutdown|reboot|halt|poweroff)(\s|$)`)},
}

// matchDenylist returns the name of the first matching pattern, or "".
func matchDenylist(command string) string {
	for _, p := range denylist {
		if p.Regex.MatchString(command) {
			return p.Name
		}
	}
	return ""
}
