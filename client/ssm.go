package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMStore reads the webhook secret from AWS Systems Manager Parameter Store.
// The parameter is expected to be a SecureString holding the same JSON
// document as the Secrets Manager variant.
type SSMStore struct {
	client *ssm.Client
}

// NewSSM creates an SSMStore from the given AWS SDK config.
func NewSSM(cfg *aws.Config) *SSMStore {
	return &SSMStore{client: ssm.NewFromConfig(*cfg)}
}

// GetWebhookURL retrieves the decrypted parameter value and parses it.
func (s *SSMStore) GetWebhookURL(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("retrieving parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter store value does not exist for %s", name)
	}
	return parseWebhookSecret(*out.Parameter.Value)
}
