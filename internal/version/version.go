// Package version provides centralized version information for the kontroll
// project. The CLI and the simulated controller daemon are versioned
// independently so the simulator can lag or lead the client it tests.
// All versions follow semantic versioning (semver) conventions.

package version

// KontrollVersion holds the current kontroll CLI version.
// Sent as part of the User-Agent header on every controller request.
// Format: major.minor.patch[-prerelease][+build]
const KontrollVersion = "0.3.0-dev"

// SimulatorVersion holds the current kontroll-sim daemon version.
// Format: major.minor.patch[-prerelease][+build]
const SimulatorVersion = "0.3.0-dev"
