// Package core holds the numeric helpers and processor configuration shared
// by the clock divider packages.
package core
