//go:build !release

package classprops

const debugAssertions = true
