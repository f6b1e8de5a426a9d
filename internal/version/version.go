// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Config file with live reload, JSON export, --at override
// 0.2.0 - Observer altitude/azimuth, sunrise/sunset, event log
// 0.1.0 - Initial release: live Sun/Moon panels, headless summary
