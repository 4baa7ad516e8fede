package notifier

import (
	"fmt"
	"sort"
	"strings"
)

// Resource type tags. The set is closed: classification only ever produces
// one of these values.
const (
	TypeEC2Instance         = "EC2 Instance"
	TypeS3Bucket            = "S3 Bucket"
	TypeRDSInstance         = "RDS Instance"
	TypeLambdaFunction      = "Lambda Function"
	TypeSecurityGroup       = "Security Group"
	TypeVPC                 = "VPC"
	TypeElasticLoadBalancer = "Elastic Load Balancer"
	TypeIAMUser             = "IAM User"
	TypeRoute53DNSRecord    = "Route53 DNS Record"
	TypeUnknown             = "Unknown"
)

// unknownValue is the literal used for any field that could not be extracted
// from the event.
const unknownValue = "Unknown"

// Field is one key/value entry of a resource's additional information.
// Fields are kept as a slice so the order they were added in survives
// through to rendering.
type Field struct {
	Key   string
	Value string
}

// ResourceInfo describes the deleted resource extracted from a CloudTrail
// event. It is built once per event and not modified afterwards.
type ResourceInfo struct {
	// Type is one of the Type* constants above.
	Type string
	// Name is the human-readable identifier. Falls back to ID when the
	// resource has no friendly name.
	Name string
	// ID is the canonical resource identifier (ARN, bucket name,
	// instance ID, ...). Display code may truncate it; ID itself is
	// always the full value.
	ID string
	// AdditionalInfo holds region, tags and type-specific facts.
	AdditionalInfo []Field
}

// unknownResource is the classification result for events no rule matches.
func unknownResource() ResourceInfo {
	return ResourceInfo{
		Type: TypeUnknown,
		Name: unknownValue,
		ID:   unknownValue,
	}
}

// orUnknown substitutes the Unknown literal for missing values.
func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}

// formatTags flattens a tag map into a single display string with keys in
// sorted order. An empty or nil map yields the given placeholder phrase.
func formatTags(tags map[string]string, placeholder string) string {
	if len(tags) == 0 {
		return placeholder
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, tags[k]))
	}
	return strings.Join(pairs, ", ")
}
