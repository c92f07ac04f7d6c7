// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build-time metadata injected by linker flags and
// printed by the version command. Missing values render as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String renders the build info on a single line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("wellness %s (commit %s, built %s)", a.version, a.commit, a.date)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
