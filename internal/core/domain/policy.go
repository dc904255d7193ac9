package domain

import (
	"runtime"
	"strings"
)

// Platform identifies where the process runs, formatted as "os/arch".
type Platform string

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS + "/" + runtime.GOARCH)
}

// OS returns the operating system part of the platform.
func (p Platform) OS() string {
	goos, _, _ := strings.Cut(string(p), "/")
	return goos
}

// Matches reports whether the platform satisfies a pattern.
// A pattern is either an operating system ("linux") or an exact "os/arch" pair.
func (p Platform) Matches(pattern string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return false
	}
	if strings.Contains(pattern, "/") {
		return pattern == strings.ToLower(string(p))
	}
	return pattern == strings.ToLower(p.OS())
}

// AllowRule enables the real docking engine for one target on a set of platforms.
// An empty platform list enables the target everywhere.
type AllowRule struct {
	Target    string   `yaml:"target" json:"target"`
	Platforms []string `yaml:"platforms" json:"platforms"`
}

// EnginePolicy is the allow-list of target and platform combinations for which the
// real docking engine is used. Everything else is scored by the mock generator.
type EnginePolicy struct {
	Allow []AllowRule
}

// Usable reports whether the real engine may score the target on the platform.
func (p EnginePolicy) Usable(target string, platform Platform) bool {
	target = NormalizeTarget(target)
	for _, rule := range p.Allow {
		if NormalizeTarget(rule.Target) != target {
			continue
		}
		if len(rule.Platforms) == 0 {
			return true
		}
		for _, pattern := range rule.Platforms {
			if platform.Matches(pattern) {
				return true
			}
		}
	}
	return false
}
