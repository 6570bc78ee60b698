//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package platform

import "runtime"

// No version descriptor is available here, so Arch always reports amd64.
func hostInfo() (Info, error) {
	return Info{System: runtime.GOOS}, nil
}
