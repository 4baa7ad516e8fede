// Package client provides thin typed clients for the AWS services the
// notifier consults: the secret store holding the webhook URL and the
// per-service tag APIs used for best-effort enrichment.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// webhookSecret is the JSON document stored in the secret store.
type webhookSecret struct {
	WebhookURL string `json:"webhookUrl"`
}

// parseWebhookSecret extracts the webhook URL from the raw secret value.
func parseWebhookSecret(raw string) (string, error) {
	var secret webhookSecret
	if err := json.Unmarshal([]byte(raw), &secret); err != nil {
		return "", fmt.Errorf("parsing webhook secret: %w", err)
	}
	if secret.WebhookURL == "" {
		return "", fmt.Errorf("webhook secret has no webhookUrl field")
	}
	return secret.WebhookURL, nil
}

// SecretsManagerStore reads the webhook secret from AWS Secrets Manager.
type SecretsManagerStore struct {
	client *secretsmanager.Client
}

// NewSecretsManager creates a SecretsManagerStore from the given AWS SDK config.
func NewSecretsManager(cfg *aws.Config) *SecretsManagerStore {
	return &SecretsManagerStore{client: secretsmanager.NewFromConfig(*cfg)}
}

// GetWebhookURL retrieves and parses the named secret.
func (s *SecretsManagerStore) GetWebhookURL(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &name,
	})
	if err != nil {
		return "", fmt.Errorf("retrieving secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", name)
	}
	return parseWebhookSecret(*out.SecretString)
}
