package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 is a client for querying bucket tags.
type S3 struct {
	client *s3.Client
}

// NewS3 creates an S3 client from the given AWS SDK config.
func NewS3(cfg *aws.Config) *S3 {
	return &S3{client: s3.NewFromConfig(*cfg)}
}

// BucketTags returns the tag set of the named bucket. Buckets without a tag
// set return an error from the API; callers treat that like any other
// lookup failure.
func (c *S3) BucketTags(ctx context.Context, bucket string) (map[string]string, error) {
	output, err := c.client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{
		Bucket: &bucket,
	})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string, len(output.TagSet))
	for _, t := range output.TagSet {
		if t.Key == nil {
			continue
		}
		tags[*t.Key] = aws.ToString(t.Value)
	}
	return tags, nil
}
