//go:build !release

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {

	require.NotPanics(t, func() { T(true, "never shown") })
	require.PanicsWithValue(t, "Assert failed: plain", func() { T(false, "plain") })
	require.PanicsWithValue(t, "Assert failed: id=7 name=quad", func() { T(false, "id=%d name=%s", 7, "quad") })
}
