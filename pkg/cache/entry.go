// Package cache implements per-file lint result persistence and the
// "is this file's prior result still valid?" check.
package cache

import (
	"time"

	"github.com/texide/texide/pkg/plugin"
)

// Entry is a single file's cached lint result.
type Entry struct {
	ContentHash  Hash                 `json:"content_hash"`
	ConfigHash   Hash                 `json:"config_hash"`
	RuleVersions map[string]string    `json:"rule_versions"`
	Diagnostics  []plugin.Diagnostic  `json:"diagnostics"`
	Timestamp    time.Time            `json:"timestamp"`
}

// sameRuleVersions reports whether versions equals e.RuleVersions exactly:
// same keys, same values. Additions, removals, or version changes all
// invalidate.
func (e Entry) sameRuleVersions(versions map[string]string) bool {
	if len(e.RuleVersions) != len(versions) {
		return false
	}
	for name, version := range versions {
		if e.RuleVersions[name] != version {
			return false
		}
	}
	return true
}
