//go:build !release

package assert

import "fmt"

func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	if len(args) == 0 {
		panic("Assert failed: " + msg)
	}

	panic("Assert failed: " + fmt.Sprintf(msg, args...))
}
