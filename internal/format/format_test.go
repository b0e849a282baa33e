package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$2,000", Price(2000, "usd", "en"))
	require.Equal(t, "$1,500", Price(1500, "USD", "xx-invalid-"))
	require.Equal(t, "-$5", Price(-5, "USD", "en"))
	require.Equal(t, "CHF 12,345", Price(12345, "CHF", "en"))

	cs := Price(5000, "USD", "cs")
	require.True(t, strings.HasSuffix(cs, " $"), cs)
	require.True(t, strings.HasPrefix(cs, "5"), cs)
}

func TestDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 7, 2025", Date(d, "en"))
	require.Equal(t, "7. 3. 2025", Date(d, "cs"))
}
