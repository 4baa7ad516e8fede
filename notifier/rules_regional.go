package notifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// RegionalRules returns the classification table for region-scoped resources:
// compute, storage, database, function, security group, virtual network and
// load balancer deletions.
func RegionalRules() RuleSet {
	return RuleSet{
		{Source: "ec2.amazonaws.com", Name: "TerminateInstances", Extract: extractTerminateInstances},
		{Source: "s3.amazonaws.com", Name: "DeleteBucket", Extract: extractDeleteBucket},
		{Source: "rds.amazonaws.com", Name: "DeleteDBInstance", Extract: extractDeleteDBInstance},
		{Source: "lambda.amazonaws.com", Name: "DeleteFunction20150331", Extract: extractDeleteFunction},
		{Source: "ec2.amazonaws.com", Name: "DeleteSecurityGroup", Extract: extractDeleteSecurityGroup},
		{Source: "ec2.amazonaws.com", Name: "DeleteVpc", Extract: extractDeleteVpc},
		{Source: "elasticloadbalancing.amazonaws.com", Name: "DeleteLoadBalancer", Extract: extractDeleteLoadBalancer},
	}
}

func extractTerminateInstances(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		InstancesSet struct {
			Items []struct {
				InstanceID string `mapstructure:"instanceId"`
			} `mapstructure:"items"`
		} `mapstructure:"instancesSet"`
	}
	decodeParams(d, &params)

	if len(params.InstancesSet.Items) == 0 {
		return unknownResource()
	}
	instanceID := params.InstancesSet.Items[0].InstanceID

	// The instance might already be terminated, so the name and tags may be
	// gone by the time we ask for them.
	tags := lookupTags(env, instanceID, func() (map[string]string, error) {
		return env.EC2.ResourceTags(ctx, instanceID)
	})

	name := tags["Name"]
	if name == "" {
		name = instanceID
	}

	return ResourceInfo{
		Type: TypeEC2Instance,
		Name: orUnknown(name),
		ID:   orUnknown(instanceID),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "tags", Value: formatTags(tags, "No tags found")},
		},
	}
}

func extractDeleteBucket(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		BucketName string `mapstructure:"bucketName"`
	}
	decodeParams(d, &params)

	tags := lookupTags(env, params.BucketName, func() (map[string]string, error) {
		return env.S3.BucketTags(ctx, params.BucketName)
	})

	return ResourceInfo{
		Type: TypeS3Bucket,
		Name: orUnknown(params.BucketName),
		ID:   orUnknown(params.BucketName),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "tags", Value: formatTags(tags, "No tags found or bucket already deleted")},
		},
	}
}

func extractDeleteDBInstance(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		DBInstanceIdentifier string `mapstructure:"dBInstanceIdentifier"`
		SkipFinalSnapshot    *bool  `mapstructure:"skipFinalSnapshot"`
	}
	decodeParams(d, &params)

	arn := fmt.Sprintf("arn:aws:rds:%s:%s:db:%s",
		d.Region("us-east-1"), d.UserIdentity.AccountID, params.DBInstanceIdentifier)
	tags := lookupTags(env, params.DBInstanceIdentifier, func() (map[string]string, error) {
		return env.RDS.InstanceTags(ctx, arn)
	})

	skipSnapshot := unknownValue
	if params.SkipFinalSnapshot != nil {
		skipSnapshot = strconv.FormatBool(*params.SkipFinalSnapshot)
	}

	return ResourceInfo{
		Type: TypeRDSInstance,
		Name: orUnknown(params.DBInstanceIdentifier),
		ID:   orUnknown(params.DBInstanceIdentifier),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "skipFinalSnapshot", Value: skipSnapshot},
			{Key: "tags", Value: formatTags(tags, "No tags found or instance already deleted")},
		},
	}
}

func extractDeleteFunction(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		FunctionName string `mapstructure:"functionName"`
	}
	decodeParams(d, &params)

	arn := fmt.Sprintf("arn:aws:lambda:%s:%s:function:%s",
		d.Region("us-east-1"), d.UserIdentity.AccountID, params.FunctionName)
	tags := lookupTags(env, params.FunctionName, func() (map[string]string, error) {
		return env.Lambda.FunctionTags(ctx, arn)
	})

	return ResourceInfo{
		Type: TypeLambdaFunction,
		Name: orUnknown(params.FunctionName),
		ID:   orUnknown(params.FunctionName),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "tags", Value: formatTags(tags, "No tags found or function already deleted")},
		},
	}
}

func extractDeleteSecurityGroup(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		GroupName string `mapstructure:"groupName"`
		GroupID   string `mapstructure:"groupId"`
	}
	decodeParams(d, &params)

	tags := lookupTags(env, params.GroupID, func() (map[string]string, error) {
		return env.EC2.ResourceTags(ctx, params.GroupID)
	})

	return ResourceInfo{
		Type: TypeSecurityGroup,
		Name: orUnknown(params.GroupName),
		ID:   orUnknown(params.GroupID),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "tags", Value: formatTags(tags, "No tags found or security group already deleted")},
		},
	}
}

func extractDeleteVpc(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		VpcID string `mapstructure:"vpcId"`
	}
	decodeParams(d, &params)

	tags := lookupTags(env, params.VpcID, func() (map[string]string, error) {
		return env.EC2.ResourceTags(ctx, params.VpcID)
	})

	return ResourceInfo{
		Type: TypeVPC,
		Name: orUnknown(params.VpcID),
		ID:   orUnknown(params.VpcID),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "tags", Value: formatTags(tags, "No tags found or VPC already deleted")},
		},
	}
}

func extractDeleteLoadBalancer(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		LoadBalancerArn string `mapstructure:"loadBalancerArn"`
	}
	decodeParams(d, &params)

	// ARN format: arn:aws:elasticloadbalancing:region:account:loadbalancer/type/name/id
	lbName := unknownValue
	lbType := unknownValue
	if parts := strings.Split(params.LoadBalancerArn, "/"); len(parts) >= 3 {
		lbType = parts[1]
		lbName = parts[2]
	}

	var tags map[string]string
	if params.LoadBalancerArn != "" {
		tags = lookupTags(env, params.LoadBalancerArn, func() (map[string]string, error) {
			return env.ELB.LoadBalancerTags(ctx, params.LoadBalancerArn)
		})
	}

	return ResourceInfo{
		Type: TypeElasticLoadBalancer,
		Name: lbName,
		ID:   orUnknown(params.LoadBalancerArn),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
			{Key: "loadBalancerType", Value: lbType},
			{Key: "tags", Value: formatTags(tags, "No tags found or load balancer already deleted")},
		},
	}
}
