package adapter

import "strings"

const cygdrivePrefix = "/cygdrive/"

// FixForeignMounts rewrites cygwin-style mount paths (/cygdrive/c/...) into
// the drive-letter form the external tool understands. It is applied at the
// boundary to every path handed to the tool; paths without the marker pass
// through untouched.
func FixForeignMounts(path string) string {
	if !strings.HasPrefix(path, cygdrivePrefix) {
		return path
	}

	rest := path[len(cygdrivePrefix):]

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return path
	}

	return "C:/" + rest[slash+1:]
}
