package render

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/digitorus/pdfnumber/fonts"
)

func mustTrueType(t *testing.T) *fonts.Font {
	t.Helper()
	f, err := fonts.TrueType("GoRegular", goregular.TTF)
	require.NoError(t, err)
	return f
}
