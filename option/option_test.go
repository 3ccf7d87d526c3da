package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	none := None[string]()
	require.True(t, none.IsNone())
	require.False(t, none.IsSome())
	require.Equal(t, "fallback", none.GetOr("fallback"))
	require.Panics(t, func() { none.Get() })

	some := Some("b.png")
	require.True(t, some.IsSome())
	require.Equal(t, "b.png", some.Get())
	require.Equal(t, "b.png", some.GetOr("fallback"))
}

func TestSomeEmptyString(t *testing.T) {
	x := Some("")
	require.True(t, x.IsSome())
	require.Equal(t, "", x.Get())
}
