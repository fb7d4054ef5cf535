// Package constants contains names and paths shared across linelint packages.
package constants

// AppName is the application name used for XDG directory paths.
const AppName = "linelint"

const (
	// LogFilename is the default log file name for linelint.
	LogFilename = "linelint.log"

	// GitDir is the git metadata directory name. It marks a work tree root
	// and is never walked.
	GitDir = ".git"

	// GitIgnoreFile is the per-directory ignore file name.
	GitIgnoreFile = ".gitignore"

	// GitModulesFile is skipped during traversal.
	GitModulesFile = ".gitmodules"
)

// ConfigFilenames lists the config files searched for in a target directory,
// in priority order.
var ConfigFilenames = []string{
	"linelint.yml",
	"linelint.yaml",
	".linelint.yml",
	".linelint.yaml",
}

// SkippedExtensions are file extensions (without the dot) never linted.
var SkippedExtensions = []string{"xlsx", "xlss"}
