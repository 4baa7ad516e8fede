package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hashicorp/go-hclog"

	"github.com/onurridvanoglu/aws-resource-notifier/notifier"
)

// The global notifier runs in us-east-1 and covers resources that are not
// tied to a region: identity principals and DNS records.
func main() {
	env, err := notifier.SetupEnvironment(context.Background(), notifier.GlobalRules())
	if err != nil {
		hclog.Default().Error("setting up environment", "error", err)
		os.Exit(1)
	}

	lambda.Start(env.HandleRequest)
}
