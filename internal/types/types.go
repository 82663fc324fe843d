// Package types defines shared data structures for jsoncstrip.
package types

import "runtime/debug"

// Version is the application version. Set at build time via -ldflags.
// Falls back to module version from go install, or "dev" for local builds.
var Version = "dev"

func init() {
	// If version wasn't set via ldflags, try to get it from build info
	// This works when installed via: go install ...@version
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
	}
}

// SupportedComments is the list of comment forms that are stripped.
var SupportedComments = []string{
	"/* block */",
	"// line",
	"# line",
}

// Error kinds reported in FileResult.Kind.
const (
	KindIncompleteString       = "incomplete_string"
	KindIncompleteComment      = "incomplete_comment"
	KindUnexpectedForwardSlash = "unexpected_forward_slash"
	KindInvalidJSON            = "invalid_json"
	KindIO                     = "io"
)

// StripResult is the output of stripping a single input.
type StripResult struct {
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
	Bytes   int64  `json:"bytes"`
	Blanked int64  `json:"blanked"`
}

// FileResult describes the outcome of checking one file.
type FileResult struct {
	Path    string `json:"path"`
	OK      bool   `json:"ok"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Bytes   int64  `json:"bytes"`
	Blanked int64  `json:"blanked"`
}

// CheckSummary contains aggregated check statistics.
type CheckSummary struct {
	FilesChecked int   `json:"files_checked"`
	FilesFailed  int   `json:"files_failed"`
	TotalBytes   int64 `json:"total_bytes"`
	TotalBlanked int64 `json:"total_blanked"`
}

// CheckResult is the complete output of a check run.
type CheckResult struct {
	Summary CheckSummary `json:"summary"`
	Files   []FileResult `json:"files"`
}

// ConfigInfo reports the active configuration.
type ConfigInfo struct {
	Path        string   `json:"path,omitempty"`
	Extensions  []string `json:"extensions"`
	ExcludeDirs []string `json:"exclude_dirs"`
	Concurrency int      `json:"concurrency"`
	Validate    bool     `json:"validate"`
}

// StatusResponse is the output of the status command and tool.
type StatusResponse struct {
	Version           string     `json:"version"`
	SupportedComments []string   `json:"supported_comments"`
	Config            ConfigInfo `json:"config"`
}
