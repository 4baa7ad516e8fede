package notifier

import (
	"context"
	"fmt"

	"github.com/onurridvanoglu/aws-resource-notifier/icons"
	"github.com/onurridvanoglu/aws-resource-notifier/trace"
)

// Response is the result of one invocation. StatusCode is 200 when the
// notification was delivered (or the event was explicitly skipped), 400 for
// malformed input and 500 for delivery or unexpected failures.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// HandleRequest processes a single CloudTrail deletion event: classify,
// enrich, render and deliver. All outcomes are encoded in the Response; the
// error return is always nil so the event bus never retries on our behalf.
func (env Environment) HandleRequest(ctx context.Context, event Event) (resp Response, _ error) {
	defer trace.Start("HandleRequest", env.Logger).Since()
	defer func() {
		if r := recover(); r != nil {
			env.Logger.Error("unexpected failure processing event", "panic", r)
			resp = Response{StatusCode: 500, Body: fmt.Sprintf("Error: %v", r)}
		}
	}()

	if event.Detail.EventSource == "" {
		env.Logger.Warn("not a valid CloudTrail event")
		return Response{StatusCode: 400, Body: "Not a valid CloudTrail event"}, nil
	}

	info := env.Rules.Classify(ctx, env, event.Detail)
	env.Logger.Info("classified deletion event",
		"eventSource", event.Detail.EventSource,
		"eventName", event.Detail.EventName,
		"resourceType", info.Type,
		"resourceId", info.ID)

	webhookURL, err := env.Secrets.GetWebhookURL(ctx, env.WebhookSecretName)
	if err != nil {
		env.Logger.Error("error retrieving webhook URL", "error", err)
		return Response{StatusCode: 500, Body: fmt.Sprintf("Error: %v", err)}, nil
	}

	card := RenderMessage(event, info, icons.URL(info.Type))
	if err := env.Webhook.Send(ctx, webhookURL, card); err != nil {
		env.Logger.Error("error sending Teams notification", "error", err)
		return Response{StatusCode: 500, Body: "Failed to send Teams notification"}, nil
	}

	return Response{
		StatusCode: 200,
		Body:       fmt.Sprintf("Notification sent for %s deletion: %s", info.Type, info.Name),
	}, nil
}
