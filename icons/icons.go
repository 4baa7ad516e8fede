// Package icons resolves a resource type to the AWS architecture icon shown
// on the notification card.
package icons

import (
	"embed"
	"encoding/base64"
)

//go:embed assets/*.svg
var assets embed.FS

// DefaultURL is the icon used for any resource type without a dedicated
// asset, including Unknown.
const DefaultURL = "https://d1.awsstatic.com/webteam/architecture-icons/q42023/Res_AWS-Logo_48.svg"

var assetByType = map[string]string{
	"EC2 Instance":          "ec2-instance.svg",
	"S3 Bucket":             "s3-bucket.svg",
	"RDS Instance":          "rds-instance.svg",
	"Lambda Function":       "lambda-function.svg",
	"Security Group":        "security-group.svg",
	"VPC":                   "vpc.svg",
	"Elastic Load Balancer": "elastic-load-balancer.svg",
	"IAM User":              "iam-user.svg",
	"Route53 DNS Record":    "route53-dns-record.svg",
}

// URL returns the icon reference for the given resource type. It is total:
// unrecognized types get the default AWS logo.
func URL(resourceType string) string {
	name, ok := assetByType[resourceType]
	if !ok {
		return DefaultURL
	}
	svg, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return DefaultURL
	}
	return dataURL(svg)
}

// dataURL converts raw SVG content into an inline data URL.
func dataURL(svg []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
}
