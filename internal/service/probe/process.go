package probe

import (
	"os"

	ps "github.com/mitchellh/go-ps"
)

// describeProcess returns the executable name and pid of the current process.
// COM registration is per thread of this process, so the probe logs which one it was.
func describeProcess() (string, int, bool) {
	process, err := ps.FindProcess(os.Getpid())
	if err != nil || process == nil {
		return "", 0, false
	}

	return process.Executable(), process.Pid(), true
}
