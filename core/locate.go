// Package core has business logic for gitpulse analysis.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitMarker is the metadata entry that identifies a repository root.
const gitMarker = ".git"

// ResolveRepositories expands path specifications (literal paths and glob
// patterns) into a deduplicated, order-stable list of absolute repository
// roots. Candidates that are missing, not directories, or lack a .git entry
// are reported as warnings and never abort resolution.
func ResolveRepositories(specs []string) ([]string, []string) {
	var repos []string
	var warnings []string
	seen := make(map[string]struct{})

	for _, spec := range specs {
		candidates, warning := expandSpec(spec)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		for _, candidate := range candidates {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping %q: %v", candidate, err))
				continue
			}
			info, err := os.Stat(abs)
			if err != nil || !info.IsDir() {
				warnings = append(warnings, fmt.Sprintf("skipping %q: not a directory", candidate))
				continue
			}
			if _, err := os.Stat(filepath.Join(abs, gitMarker)); err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping %q: not a Git repository", candidate))
				continue
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			repos = append(repos, abs)
		}
	}

	return repos, warnings
}

// expandSpec expands one path specification. Specs without glob
// metacharacters are treated as literal paths, so a missing literal path
// still produces its own warning downstream.
func expandSpec(spec string) ([]string, string) {
	if !strings.ContainsAny(spec, "*?[") {
		return []string{spec}, ""
	}
	matches, err := filepath.Glob(spec)
	if err != nil {
		return nil, fmt.Sprintf("invalid pattern %q: %v", spec, err)
	}
	return matches, ""
}
