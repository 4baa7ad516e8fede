package notifier

import (
	"fmt"
	"strings"
	"time"
)

const (
	themeColor      = "C43532"
	eventTimeLayout = "2006-01-02T15:04:05Z"
)

// MessageCard is the Teams notification document.
// https://learn.microsoft.com/en-us/outlook/actionable-messages/message-card-reference
type MessageCard struct {
	Type            string    `json:"@type"`
	Context         string    `json:"@context"`
	ThemeColor      string    `json:"themeColor"`
	Summary         string    `json:"summary"`
	Sections        []Section `json:"sections"`
	PotentialAction []Action  `json:"potentialAction"`
}

type Section struct {
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle"`
	Text             string `json:"text"`
	Markdown         bool   `json:"markdown"`
}

type Action struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// RenderMessage builds the notification card for a deletion event. It is
// pure: identical inputs produce identical cards, and malformed input fields
// are passed through raw rather than failing.
func RenderMessage(event Event, info ResourceInfo, iconURL string) MessageCard {
	d := event.Detail
	region := d.Region(unknownValue)
	userType := orUnknown(d.UserIdentity.Type)
	userName := resolveUserName(d.UserIdentity)
	timestamp := formatEventTime(d.EventTime)

	text := renderBody(info, iconURL, userName, userType, region, timestamp)

	return MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: themeColor,
		Summary:    fmt.Sprintf("%s Deleted", info.Type),
		Sections: []Section{
			{Text: text, Markdown: true},
		},
		PotentialAction: []Action{
			{
				Type: "OpenUri",
				Name: "🔗 View in AWS Console",
				Targets: []Target{
					{OS: "default", URI: fmt.Sprintf("https://%s.console.aws.amazon.com", region)},
				},
			},
			{
				Type: "OpenUri",
				Name: "📚 View AWS Documentation",
				Targets: []Target{
					{OS: "default", URI: "https://docs.aws.amazon.com"},
				},
			},
		},
	}
}

// resolveUserName extracts a display name from the calling identity.
func resolveUserName(u UserIdentity) string {
	switch u.Type {
	case "IAMUser":
		return orUnknown(u.UserName)
	case "AssumedRole":
		return orUnknown(u.SessionContext.SessionIssuer.UserName)
	case "Root":
		return "Root User"
	default:
		return unknownValue
	}
}

// formatEventTime reformats the CloudTrail timestamp for display. On parse
// failure the raw value is passed through unchanged.
func formatEventTime(raw string) string {
	t, err := time.Parse(eventTimeLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02 15:04:05") + " UTC"
}

// truncateID shortens the resource ID for the card header. The full ID is
// used everywhere identity matters.
func truncateID(id string) string {
	if len(id) > 22 {
		return id[:22]
	}
	return id
}

func renderBody(info ResourceInfo, iconURL, userName, userType, region, timestamp string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px;">
    <div style="background: linear-gradient(135deg, #C43532 0%%, #FF6666 100%%); border-radius: 12px; padding: 20px; color: white; margin-bottom: 10px; box-shadow: 0 4px 8px rgba(0,0,0,0.1);">
        <div style="display: flex; align-items: center; justify-content: space-between;">
            <div>
                <h2 style="margin: 0; font-size: 22px; font-weight: 600;">⚠️ RESOURCE DELETED</h2>
                <p style="margin: 5px 0 0 0; font-size: 16px; opacity: 0.9;">%s</p>
            </div>
            <img src="%s" width="48" height="48" style="filter: brightness(0) invert(1); margin-left: 15px;" />
        </div>
        <div style="margin-top: 20px; display: flex; justify-content: space-between; align-items: flex-end;">
            <div>
                <p style="margin: 0; font-size: 14px; opacity: 0.9; font-weight: 500;">RESOURCE ID</p>
                <p style="margin: 0; font-size: 16px; font-family: 'Courier New', monospace; letter-spacing: 1px;">%s</p>
            </div>
            <div style="text-align: right;">
                <p style="margin: 0; font-size: 14px; opacity: 0.9; font-weight: 500;">DELETED BY</p>
                <p style="margin: 0; font-size: 16px;">%s</p>
            </div>
        </div>
    </div>

    <div style="background: white; border-radius: 12px; padding: 20px; box-shadow: 0 2px 5px rgba(0,0,0,0.05);">
        <h3 style="margin: 0 0 15px 0; color: #C43532; font-size: 16px; border-bottom: 1px solid #eee; padding-bottom: 8px;">📊 RESOURCE DETAILS</h3>
        <div style="display: flex; flex-wrap: wrap;">`,
		info.Type, iconURL, truncateID(info.ID), userName)

	for _, detail := range []Field{
		{Key: "RESOURCE NAME", Value: info.Name},
		{Key: "REGION", Value: region},
		{Key: "TIMESTAMP", Value: timestamp},
		{Key: "USER TYPE", Value: userType},
	} {
		writeGridEntry(&b, detail.Key, detail.Value)
	}
	b.WriteString("\n        </div>")

	if len(info.AdditionalInfo) > 0 {
		b.WriteString(`
        <h3 style="margin: 15px 0 15px 0; color: #C43532; font-size: 16px; border-bottom: 1px solid #eee; padding-bottom: 8px;">📙 ADDITIONAL INFORMATION</h3>
        <div style="display: flex; flex-wrap: wrap;">`)
		for _, f := range info.AdditionalInfo {
			writeGridEntry(&b, strings.ToUpper(f.Key), f.Value)
		}
		b.WriteString("\n        </div>")
	}

	b.WriteString("\n    </div>\n</div>")

	return b.String()
}

func writeGridEntry(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, `
            <div style="flex: 1; min-width: 200px; margin-bottom: 10px;">
                <p style="margin: 0; font-size: 12px; color: #444; font-weight: 600;">%s</p>
                <p style="margin: 5px 0 0 0; font-size: 15px; font-weight: 500; color: #222;">%s</p>
            </div>`, key, value)
}
