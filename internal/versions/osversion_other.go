//go:build !unix && !windows

// /internal/versions/osversion_other.go
package versions

func osVersion() string { return "" }
