//go:build release

package classprops

const debugAssertions = false
