package notifier

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/onurridvanoglu/aws-resource-notifier/icons"
)

func testResourceInfo() ResourceInfo {
	return ResourceInfo{
		Type: TypeEC2Instance,
		Name: "web-1",
		ID:   "i-0a1b2c3d4e5f67890abcdef",
		AdditionalInfo: []Field{
			{Key: "region", Value: "eu-west-1"},
			{Key: "tags", Value: "Name=web-1"},
		},
	}
}

func TestRenderMessageIsDeterministic(t *testing.T) {
	event := loadFixture(t, "terminate_instances")
	info := testResourceInfo()
	icon := icons.URL(info.Type)

	first := RenderMessage(event, info, icon)
	second := RenderMessage(event, info, icon)
	require.Empty(t, cmp.Diff(first, second))
}

func TestRenderMessageCardStructure(t *testing.T) {
	event := loadFixture(t, "terminate_instances")
	info := testResourceInfo()

	card := RenderMessage(event, info, icons.DefaultURL)

	require.Equal(t, "MessageCard", card.Type)
	require.Equal(t, "http://schema.org/extensions", card.Context)
	require.Equal(t, "C43532", card.ThemeColor)
	require.Equal(t, "EC2 Instance Deleted", card.Summary)
	require.Len(t, card.Sections, 1)
	require.True(t, card.Sections[0].Markdown)

	require.Len(t, card.PotentialAction, 2)
	require.Equal(t, "https://eu-west-1.console.aws.amazon.com", card.PotentialAction[0].Targets[0].URI)
	require.Equal(t, "https://docs.aws.amazon.com", card.PotentialAction[1].Targets[0].URI)
}

func TestRenderMessageTruncatesResourceID(t *testing.T) {
	event := loadFixture(t, "terminate_instances")
	info := testResourceInfo()

	card := RenderMessage(event, info, icons.DefaultURL)
	text := card.Sections[0].Text

	// The header shows only the first 22 characters; the full ID stays on
	// the info record.
	require.Contains(t, text, "i-0a1b2c3d4e5f67890abc")
	require.NotContains(t, text, info.ID)
}

func TestRenderMessageAdditionalInfo(t *testing.T) {
	event := loadFixture(t, "delete_db_instance")
	info := ResourceInfo{
		Type: TypeRDSInstance,
		Name: "orders-db",
		ID:   "orders-db",
		AdditionalInfo: []Field{
			{Key: "region", Value: "eu-west-1"},
			{Key: "skipFinalSnapshot", Value: "true"},
			{Key: "tags", Value: "No tags found or instance already deleted"},
		},
	}

	text := RenderMessage(event, info, icons.DefaultURL).Sections[0].Text

	require.Contains(t, text, "ADDITIONAL INFORMATION")
	require.Contains(t, text, "SKIPFINALSNAPSHOT")
	require.Contains(t, text, "REGION")
	// Keys render in the order they were added.
	require.Less(t, strings.Index(text, "SKIPFINALSNAPSHOT"), strings.Index(text, "TAGS"))
}

func TestRenderMessageOmitsEmptyAdditionalInfo(t *testing.T) {
	event := loadFixture(t, "unsupported")
	info := unknownResource()

	text := RenderMessage(event, info, icons.DefaultURL).Sections[0].Text
	require.NotContains(t, text, "ADDITIONAL INFORMATION")
}

func TestResolveUserName(t *testing.T) {
	cases := map[string]struct {
		identity UserIdentity
		expected string
	}{
		"IAM user": {
			identity: UserIdentity{Type: "IAMUser", UserName: "ops-admin"},
			expected: "ops-admin",
		},
		"assumed role": {
			identity: UserIdentity{
				Type:           "AssumedRole",
				SessionContext: SessionContext{SessionIssuer: SessionIssuer{UserName: "deploy-role"}},
			},
			expected: "deploy-role",
		},
		"root": {
			identity: UserIdentity{Type: "Root"},
			expected: "Root User",
		},
		"missing type": {
			identity: UserIdentity{},
			expected: "Unknown",
		},
		"federated": {
			identity: UserIdentity{Type: "FederatedUser", UserName: "someone"},
			expected: "Unknown",
		},
		"IAM user without name": {
			identity: UserIdentity{Type: "IAMUser"},
			expected: "Unknown",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.expected, resolveUserName(c.identity))
		})
	}
}

func TestFormatEventTime(t *testing.T) {
	cases := map[string]struct {
		raw      string
		expected string
	}{
		"valid timestamp":  {"2024-03-18T09:42:17Z", "2024-03-18 09:42:17 UTC"},
		"unparseable":      {"yesterday-ish", "yesterday-ish"},
		"empty":            {"", ""},
		"unexpected shape": {"2024-03-18 09:42:17", "2024-03-18 09:42:17"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.expected, formatEventTime(c.raw))
		})
	}
}

func TestFormatTags(t *testing.T) {
	require.Equal(t, "placeholder", formatTags(nil, "placeholder"))
	require.Equal(t, "placeholder", formatTags(map[string]string{}, "placeholder"))
	require.Equal(t, "a=1, b=2, c=3", formatTags(map[string]string{"c": "3", "a": "1", "b": "2"}, "placeholder"))
}
