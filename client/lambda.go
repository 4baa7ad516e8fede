package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// Lambda is a client for interfacing with the AWS Lambda API.
type Lambda struct {
	client *lambda.Client
}

// NewLambda returns a Lambda client.
func NewLambda(cfg *aws.Config) *Lambda {
	return &Lambda{client: lambda.NewFromConfig(*cfg)}
}

// FunctionTags returns the tags of the function with the given ARN.
func (c *Lambda) FunctionTags(ctx context.Context, arn string) (map[string]string, error) {
	output, err := c.client.ListTags(ctx, &lambda.ListTagsInput{
		Resource: &arn,
	})
	if err != nil {
		return nil, err
	}
	return output.Tags, nil
}
