// Package platform identifies the host and names the matching draftv2 release binary.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Version is the draftv2 release the binary name is built for.
	Version = "v0.0.1"
	// Prefix is the leading segment of every draftv2 binary name.
	Prefix = "draftv2"

	ArchARM64 = "arm64"
	ArchAMD64 = "amd64"
)

// ErrDetect is returned when the host cannot be queried.
var ErrDetect = errors.New("cannot query host platform")

// armMarkers are matched against the lowercased descriptor.
var armMarkers = []string{"arm", "aarch64"}

// Info holds the raw host facts used to build a binary name.
type Info struct {
	System     string // e.g. "Linux", "Darwin", "Windows"
	Descriptor string // kernel build string or Windows version
}

// uname is injectable for testing.
var uname = hostInfo

// Detect queries the host OS name and platform version descriptor.
func Detect() (Info, error) {
	info, err := uname()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrDetect, err)
	}
	return info, nil
}

// OS returns the lowercased OS name.
func (i Info) OS() string {
	return strings.ToLower(i.System)
}

// Arch guesses the CPU architecture from the descriptor: "arm64" if it
// mentions ARM, "amd64" otherwise. The machine field is never consulted.
func (i Info) Arch() string {
	d := strings.ToLower(i.Descriptor)
	for _, m := range armMarkers {
		if strings.Contains(d, m) {
			return ArchARM64
		}
	}
	return ArchAMD64
}

// BinaryName returns "draftv2-{os}-{arch}" for this host.
func (i Info) BinaryName() string {
	return Prefix + "-" + i.OS() + "-" + i.Arch()
}

// BinaryName builds the binary name for a simulated host.
func BinaryName(system, descriptor string) string {
	return Info{System: system, Descriptor: descriptor}.BinaryName()
}

// ComputeBinaryName detects the host and returns its binary name.
func ComputeBinaryName() (string, error) {
	info, err := Detect()
	if err != nil {
		return "", err
	}
	return info.BinaryName(), nil
}
