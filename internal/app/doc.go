// /internal/app/doc.go

// Package app builds the launcher's components from a Config and hands
// them to the commands.
package app
