package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURLKnownTypes(t *testing.T) {
	for resourceType := range assetByType {
		t.Run(resourceType, func(t *testing.T) {
			url := URL(resourceType)
			require.True(t, strings.HasPrefix(url, "data:image/svg+xml;base64,"), "got %q", url)
		})
	}
}

func TestURLIsTotal(t *testing.T) {
	require.Equal(t, DefaultURL, URL("Unknown"))
	require.Equal(t, DefaultURL, URL(""))
	require.Equal(t, DefaultURL, URL("Quantum Computer"))
}

func TestURLIsDeterministic(t *testing.T) {
	require.Equal(t, URL("EC2 Instance"), URL("EC2 Instance"))
}
