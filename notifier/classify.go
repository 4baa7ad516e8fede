package notifier

import (
	"context"

	"github.com/mitchellh/mapstructure"
)

// Rule classifies one (eventSource, eventName) pair. Extract pulls the
// identifying fields out of the event detail and performs the best-effort
// tag enrichment for its resource type.
type Rule struct {
	Source  string
	Name    string
	Extract func(ctx context.Context, env Environment, d Detail) ResourceInfo
}

// RuleSet is an ordered classification table. Keys are mutually exclusive by
// construction: each (source, name) pair appears at most once per handler.
type RuleSet []Rule

// Classify maps the event detail to a ResourceInfo. It is total: input that
// matches no rule produces the Unknown default record rather than an error.
func (rs RuleSet) Classify(ctx context.Context, env Environment, d Detail) ResourceInfo {
	for _, r := range rs {
		if r.Source == d.EventSource && r.Name == d.EventName {
			return r.Extract(ctx, env, d)
		}
	}
	return unknownResource()
}

// decodeParams decodes the raw requestParameters map into the typed struct a
// rule works with. Decode failures are tolerated: the rule sees zero values
// and substitutes the Unknown literal per field.
func decodeParams(d Detail, out interface{}) {
	if d.RequestParameters == nil {
		return
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return
	}
	_ = decoder.Decode(d.RequestParameters)
}

// lookupTags runs a tag fetch and absorbs any failure. The resource is often
// already deleted when this runs, so errors only rate a warning.
func lookupTags(env Environment, resourceID string, fetch func() (map[string]string, error)) map[string]string {
	tags, err := fetch()
	if err != nil {
		env.Logger.Warn("tag lookup failed", "resource", resourceID, "error", err)
		return nil
	}
	return tags
}
