package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ConfigFingerprint hashes a configure argv into a stable hex string. A NUL
// separator keeps argument boundaries significant.
func ConfigFingerprint(argv []string) string {
	h := xxhash.New()
	for _, arg := range argv {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
