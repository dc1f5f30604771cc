// /cmd/forge-launcher/commands/doc.go

// Package commands implements the forge-launcher command line.
//
// The root command and "play" show the username form, or play directly when
// --username is given. "install" prepares the game directory without
// launching, "versions" lists what is installed and "clean" removes the
// launcher's own downloads.
package commands
