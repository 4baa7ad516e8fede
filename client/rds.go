package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// RDS is a client for querying database instance tags.
type RDS struct {
	client *rds.Client
}

// NewRDS creates an RDS client from the given AWS SDK config.
func NewRDS(cfg *aws.Config) *RDS {
	return &RDS{client: rds.NewFromConfig(*cfg)}
}

// InstanceTags returns the tags attached to the database instance with the
// given ARN.
func (c *RDS) InstanceTags(ctx context.Context, arn string) (map[string]string, error) {
	output, err := c.client.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{
		ResourceName: &arn,
	})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string, len(output.TagList))
	for _, t := range output.TagList {
		if t.Key == nil {
			continue
		}
		tags[*t.Key] = aws.ToString(t.Value)
	}
	return tags, nil
}
