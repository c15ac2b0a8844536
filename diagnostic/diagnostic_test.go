package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrAggregatesOnlyErrors(t *testing.T) {
	d := New()
	require.NoError(t, d.Err())

	d.Warningf(3, "unused %s", "x")
	require.False(t, d.HasErrors())
	require.NoError(t, d.Err())

	d.Errorf(7, "duplicate %q", "#a")
	d.ErrorWithHint(9, "undeclared #b", "declared names are #a")

	require.True(t, d.HasErrors())
	require.Len(t, d.Errors(), 2)
	require.Len(t, d.All(), 3)

	err := d.Err()
	require.Error(t, err)

	var diag Diagnostic
	require.True(t, errors.As(err, &diag))
	require.Equal(t, `duplicate "#a"`, diag.Message)
	require.Equal(t, "error[7]: duplicate \"#a\"\nerror[9]: undeclared #b (hint: declared names are #a)", err.Error())
}

func TestFormat(t *testing.T) {
	d := New()
	d.Warningf(1, "w")
	d.ErrorWithHint(2, "e", "h")
	require.Equal(t, "warning[1]: w\nerror[2]: e\n  hint: h", d.Format())
}
