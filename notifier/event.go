package notifier

// Event is the EventBridge envelope that wraps a CloudTrail management event.
// Only the fields the notifier reads are modeled; everything else is ignored
// by the JSON decoder.
type Event struct {
	Detail Detail `json:"detail"`
}

// Detail holds the CloudTrail record. RequestParameters is kept as a raw map
// because its shape differs per (eventSource, eventName) pair; each
// classification rule decodes the slice of it that it needs.
type Detail struct {
	EventSource       string                 `json:"eventSource"`
	EventName         string                 `json:"eventName"`
	EventTime         string                 `json:"eventTime"`
	AWSRegion         string                 `json:"awsRegion"`
	UserIdentity      UserIdentity           `json:"userIdentity"`
	RequestParameters map[string]interface{} `json:"requestParameters"`
}

// UserIdentity identifies the principal that made the API call.
type UserIdentity struct {
	Type           string         `json:"type"`
	UserName       string         `json:"userName"`
	AccountID      string         `json:"accountId"`
	SessionContext SessionContext `json:"sessionContext"`
}

type SessionContext struct {
	SessionIssuer SessionIssuer `json:"sessionIssuer"`
}

type SessionIssuer struct {
	UserName string `json:"userName"`
}

// Region returns the region the event was recorded in, or the given fallback
// when the record doesn't carry one.
func (d Detail) Region(fallback string) string {
	if d.AWSRegion == "" {
		return fallback
	}
	return d.AWSRegion
}
