package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWebhookSecret(t *testing.T) {
	cases := map[string]struct {
		raw       string
		expected  string
		expectErr bool
	}{
		"valid secret": {
			raw:      `{"webhookUrl": "https://hooks.example.com/abc"}`,
			expected: "https://hooks.example.com/abc",
		},
		"extra fields are ignored": {
			raw:      `{"webhookUrl": "https://hooks.example.com/abc", "channel": "#alerts"}`,
			expected: "https://hooks.example.com/abc",
		},
		"not JSON": {
			raw:       "https://hooks.example.com/abc",
			expectErr: true,
		},
		"missing field": {
			raw:       `{"url": "https://hooks.example.com/abc"}`,
			expectErr: true,
		},
		"empty value": {
			raw:       `{"webhookUrl": ""}`,
			expectErr: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			url, err := parseWebhookSecret(c.raw)
			if c.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.expected, url)
		})
	}
}
