package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// ELB is a client for querying load balancer tags.
type ELB struct {
	client *elbv2.Client
}

// NewELB creates an ELB client from the given AWS SDK config.
func NewELB(cfg *aws.Config) *ELB {
	return &ELB{client: elbv2.NewFromConfig(*cfg)}
}

// LoadBalancerTags returns the tags attached to the load balancer with the
// given ARN.
func (c *ELB) LoadBalancerTags(ctx context.Context, arn string) (map[string]string, error) {
	output, err := c.client.DescribeTags(ctx, &elbv2.DescribeTagsInput{
		ResourceArns: []string{arn},
	})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string)
	for _, desc := range output.TagDescriptions {
		for _, t := range desc.Tags {
			if t.Key == nil {
				continue
			}
			tags[*t.Key] = aws.ToString(t.Value)
		}
	}
	return tags, nil
}
