package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/hashicorp/go-multierror"
)

// EC2 is a client for querying tags of EC2-owned resources. Instances,
// security groups and VPCs all resolve through the same resource-id filter.
type EC2 struct {
	client *ec2.Client
}

// NewEC2 creates an EC2 client from the given AWS SDK config.
func NewEC2(cfg *aws.Config) *EC2 {
	return &EC2{client: ec2.NewFromConfig(*cfg)}
}

// ResourceTags returns all tags attached to the resource with the given ID.
func (c *EC2) ResourceTags(ctx context.Context, resourceID string) (map[string]string, error) {
	var resultErr error
	tags := make(map[string]string)

	params := &ec2.DescribeTagsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("resource-id"),
				Values: []string{resourceID},
			},
		},
	}
	paginator := ec2.NewDescribeTagsPaginator(c.client, params)

	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			resultErr = multierror.Append(resultErr, err)
			return nil, resultErr
		}

		for _, t := range output.Tags {
			if t.Key == nil {
				continue
			}
			tags[*t.Key] = aws.ToString(t.Value)
		}
	}

	return tags, nil
}
