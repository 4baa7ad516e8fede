package notifier

import (
	"context"
	"fmt"
	"strings"
)

// GlobalRules returns the classification table for resources that are
// global or partition scoped rather than regional: identity principals and
// DNS records.
func GlobalRules() RuleSet {
	return RuleSet{
		{Source: "iam.amazonaws.com", Name: "DeleteUser", Extract: extractDeleteUser},
		{Source: "route53.amazonaws.com", Name: "ChangeResourceRecordSets", Extract: extractDeleteRecordSet},
	}
}

func extractDeleteUser(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		UserName string `mapstructure:"userName"`
	}
	decodeParams(d, &params)

	return ResourceInfo{
		Type: TypeIAMUser,
		Name: orUnknown(params.UserName),
		ID:   orUnknown(params.UserName),
		AdditionalInfo: []Field{
			{Key: "region", Value: d.Region(unknownValue)},
		},
	}
}

func extractDeleteRecordSet(ctx context.Context, env Environment, d Detail) ResourceInfo {
	var params struct {
		HostedZoneID string `mapstructure:"hostedZoneId"`
		ChangeBatch  struct {
			Changes []struct {
				Action            string `mapstructure:"action"`
				ResourceRecordSet struct {
					Name string `mapstructure:"name"`
					Type string `mapstructure:"type"`
				} `mapstructure:"resourceRecordSet"`
			} `mapstructure:"changes"`
		} `mapstructure:"changeBatch"`
	}
	decodeParams(d, &params)

	// ChangeResourceRecordSets covers creates and updates too; only the
	// DELETE action is a deletion event.
	if len(params.ChangeBatch.Changes) == 0 || params.ChangeBatch.Changes[0].Action != "DELETE" {
		return unknownResource()
	}

	change := params.ChangeBatch.Changes[0]
	zoneID := strings.TrimPrefix(orUnknown(params.HostedZoneID), "/hostedzone/")
	recordName := orUnknown(change.ResourceRecordSet.Name)
	recordType := orUnknown(change.ResourceRecordSet.Type)

	return ResourceInfo{
		Type: TypeRoute53DNSRecord,
		Name: recordName,
		ID:   fmt.Sprintf("%s/%s/%s", zoneID, recordName, recordType),
		AdditionalInfo: []Field{
			{Key: "hostedZoneId", Value: zoneID},
			{Key: "recordType", Value: recordType},
			{Key: "region", Value: d.Region(unknownValue)},
		},
	}
}
