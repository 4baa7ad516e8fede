package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"

	"github.com/onurridvanoglu/aws-resource-notifier/client"
	"github.com/onurridvanoglu/aws-resource-notifier/webhook"
)

// Config holds the configuration from the environment.
type Config struct {
	// WebhookSecretName is the name of the secret that holds the Teams
	// webhook URL.
	WebhookSecretName string `envconfig:"WEBHOOK_SECRET_NAME" required:"true"`

	// WebhookSecretSource selects the secret store backend: "secretsmanager"
	// or "ssm".
	WebhookSecretSource string `envconfig:"WEBHOOK_SECRET_SOURCE" default:"secretsmanager"`

	// LogLevel is the configured logging level.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// SecretStore retrieves the webhook URL from a secret store. A failure here
// is fatal for the invocation: without a webhook URL no notification can be
// delivered.
type SecretStore interface {
	GetWebhookURL(ctx context.Context, name string) (string, error)
}

// Per-service tag lookup clients. Every lookup is best-effort at the call
// site: the resource may already be gone by the time it runs.

// EC2API retrieves tags for EC2-owned resources (instances, security groups,
// VPCs) by resource ID.
type EC2API interface {
	ResourceTags(ctx context.Context, resourceID string) (map[string]string, error)
}

// S3API retrieves the tag set of a bucket.
type S3API interface {
	BucketTags(ctx context.Context, bucket string) (map[string]string, error)
}

// RDSAPI retrieves tags for a database instance by ARN.
type RDSAPI interface {
	InstanceTags(ctx context.Context, arn string) (map[string]string, error)
}

// LambdaAPI retrieves tags for a function by ARN.
type LambdaAPI interface {
	FunctionTags(ctx context.Context, arn string) (map[string]string, error)
}

// ELBAPI retrieves tags for a load balancer by ARN.
type ELBAPI interface {
	LoadBalancerTags(ctx context.Context, arn string) (map[string]string, error)
}

// Sender delivers a rendered message to a webhook endpoint.
type Sender interface {
	Send(ctx context.Context, url string, message interface{}) error
}

// Environment contains all of the notifier's dependencies.
type Environment struct {
	Config

	// Logger is used to log messages.
	Logger hclog.Logger

	// Secrets is the secret store that holds the webhook URL.
	Secrets SecretStore

	// Tag lookup collaborators, one per resource-owning service.
	EC2    EC2API
	S3     S3API
	RDS    RDSAPI
	Lambda LambdaAPI
	ELB    ELBAPI

	// Webhook delivers the rendered notification.
	Webhook Sender

	// Rules is the classification table this handler instance dispatches on.
	Rules RuleSet
}

// SetupEnvironment constructs the processing Environment from environment
// variables and the default AWS SDK config. The given rule set determines
// which resource types this handler instance classifies.
func SetupEnvironment(ctx context.Context, rules RuleSet) (Environment, error) {
	var env Environment

	err := envconfig.Process("", &env.Config)
	if err != nil {
		return env, err
	}

	env.Logger = hclog.New(
		&hclog.LoggerOptions{
			Level: hclog.LevelFromString(env.LogLevel),
		},
	)

	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRetryer(func() aws.Retryer {
		// Adaptive mode should retry on hitting rate limits.
		return retry.AddWithMaxBackoffDelay(retry.NewAdaptiveMode(), 3*time.Second)
	}))
	if err != nil {
		return env, err
	}

	switch env.WebhookSecretSource {
	case "secretsmanager":
		env.Secrets = client.NewSecretsManager(&sdkConfig)
	case "ssm":
		env.Secrets = client.NewSSM(&sdkConfig)
	default:
		return env, fmt.Errorf("unsupported webhook secret source %q", env.WebhookSecretSource)
	}

	env.EC2 = client.NewEC2(&sdkConfig)
	env.S3 = client.NewS3(&sdkConfig)
	env.RDS = client.NewRDS(&sdkConfig)
	env.Lambda = client.NewLambda(&sdkConfig)
	env.ELB = client.NewELB(&sdkConfig)
	env.Webhook = webhook.New(env.Logger)
	env.Rules = rules

	return env, nil
}
