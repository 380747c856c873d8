package sys

import (
	"os"
	"regexp"
	"strings"
)

var isCgroupMatch = regexp.MustCompile("(docker|lxc|rkt|libpod|kubepods|containerd)")

// IsRunningInsideContainer returns true if the process is running inside a container environment.
func IsRunningInsideContainer() bool {
	return insideContainer("/")
}

func insideContainer(root string) bool {
	// Docker marks this file
	if exists(root + ".dockerenv") {
		return true
	}
	// Podman, Docker, or CRI-O mark this file
	if exists(root + "run/.containerenv") {
		return true
	}
	buf, err := os.ReadFile(root + "proc/1/cgroup")
	if err != nil || len(buf) == 0 {
		return false
	}
	return isCgroupMatch.MatchString(strings.TrimSpace(string(buf)))
}

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
