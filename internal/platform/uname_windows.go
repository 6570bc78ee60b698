package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func hostInfo() (Info, error) {
	v := windows.RtlGetVersion()
	return Info{
		System:     "Windows",
		Descriptor: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
	}, nil
}
