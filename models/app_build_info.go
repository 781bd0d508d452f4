// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries link-time build metadata shown by the client and the
// development server.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns BuildInfo with "N/A" substituted for empty values.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// String renders the three values on separate lines.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.Version, b.Date, b.Commit)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
