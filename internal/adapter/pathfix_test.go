package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixForeignMounts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain unix path", "/home/user/repo", "/home/user/repo"},
		{"relative path", "thirdparty/jdiff/jdiff.jar", "thirdparty/jdiff/jdiff.jar"},
		{"cygdrive path", "/cygdrive/c/Users/dev/repo", "C:/Users/dev/repo"},
		{"cygdrive other letter", "/cygdrive/d/work/src", "C:/work/src"},
		{"cygdrive without payload", "/cygdrive/c", "/cygdrive/c"},
		{"marker in the middle is left alone", "/mnt/cygdrive/c/x", "/mnt/cygdrive/c/x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixForeignMounts(tt.in))
		})
	}
}
