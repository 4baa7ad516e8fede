package notifier

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

// fakeTagService implements every tag lookup interface with a single
// configurable result so one instance can back the whole Environment.
type fakeTagService struct {
	tags  map[string]string
	err   error
	calls int
}

func (f *fakeTagService) ResourceTags(ctx context.Context, resourceID string) (map[string]string, error) {
	f.calls++
	return f.tags, f.err
}

func (f *fakeTagService) BucketTags(ctx context.Context, bucket string) (map[string]string, error) {
	f.calls++
	return f.tags, f.err
}

func (f *fakeTagService) InstanceTags(ctx context.Context, arn string) (map[string]string, error) {
	f.calls++
	return f.tags, f.err
}

func (f *fakeTagService) FunctionTags(ctx context.Context, arn string) (map[string]string, error) {
	f.calls++
	return f.tags, f.err
}

func (f *fakeTagService) LoadBalancerTags(ctx context.Context, arn string) (map[string]string, error) {
	f.calls++
	return f.tags, f.err
}

type fakeSecretStore struct {
	url   string
	err   error
	calls int
}

func (f *fakeSecretStore) GetWebhookURL(ctx context.Context, name string) (string, error) {
	f.calls++
	return f.url, f.err
}

type fakeSender struct {
	err         error
	calls       int
	lastURL     string
	lastMessage interface{}
}

func (f *fakeSender) Send(ctx context.Context, url string, message interface{}) error {
	f.calls++
	f.lastURL = url
	f.lastMessage = message
	return f.err
}

// panicSender simulates an unexpected fault deep in the pipeline.
type panicSender struct{}

func (panicSender) Send(ctx context.Context, url string, message interface{}) error {
	panic("webhook client blew up")
}

func mockEnvironment(rules RuleSet, tags *fakeTagService, secrets *fakeSecretStore, sender Sender) Environment {
	return Environment{
		Config: Config{
			WebhookSecretName:   "teams-webhook",
			WebhookSecretSource: "secretsmanager",
			LogLevel:            "off",
		},
		Logger:  hclog.NewNullLogger(),
		Secrets: secrets,
		EC2:     tags,
		S3:      tags,
		RDS:     tags,
		Lambda:  tags,
		ELB:     tags,
		Webhook: sender,
		Rules:   rules,
	}
}

func loadFixture(t *testing.T, filename string) Event {
	t.Helper()

	d, err := os.ReadFile("./fixtures/" + filename + ".json")
	require.NoError(t, err)

	var e Event
	err = json.Unmarshal(d, &e)
	require.NoError(t, err)

	return e
}
