//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package platform

import "golang.org/x/sys/unix"

func hostInfo() (Info, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Info{}, err
	}
	return Info{
		System:     unix.ByteSliceToString(uts.Sysname[:]),
		Descriptor: unix.ByteSliceToString(uts.Version[:]),
	}, nil
}
