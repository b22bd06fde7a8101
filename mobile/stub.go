//go:build !mobile

// Package mobile is the ebitenmobile binding. Without the mobile build tag
// it only exports Dummy.
package mobile

// Dummy is exported so the package builds on every platform.
func Dummy() {}
