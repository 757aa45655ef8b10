// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
	"strings"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Build tools found on PATH
}

// probed lists the build tools the example builder may invoke
var probed = []string{"make", "nmake", "kvsmake", "qmake"}

// lookPath is replaced in tests
var lookPath = exec.LookPath

func commandExists(cmd string) bool {
	_, err := lookPath(cmd)
	return err == nil
}

// Detect detects the current platform and available build tools.
// A non-empty goos overrides runtime.GOOS.
func Detect(goos string) *Platform {
	if goos == "" {
		goos = runtime.GOOS
	}
	p := &Platform{
		OS:        strings.ToLower(goos),
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, tool := range probed {
		if commandExists(tool) {
			p.Available = append(p.Available, tool)
		}
	}

	return p
}

// IsWindows reports whether the platform belongs to the Windows family
func (p *Platform) IsWindows() bool {
	return IsWindows(p.OS)
}

// IsWindows reports whether goos names a Windows-family system
func IsWindows(goos string) bool {
	goos = strings.ToLower(goos)
	return goos == "windows" || strings.HasPrefix(goos, "win") || strings.HasPrefix(goos, "cygwin")
}

// MakeTool returns the native make executable for the platform
func (p *Platform) MakeTool() string {
	if p.IsWindows() {
		return "nmake"
	}
	return "make"
}

// Has reports whether tool was found on PATH
func (p *Platform) Has(tool string) bool {
	return slices.Contains(p.Available, tool)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v)", p.OS, p.Arch, p.Available)
}
