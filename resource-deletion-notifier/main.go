package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hashicorp/go-hclog"

	"github.com/onurridvanoglu/aws-resource-notifier/notifier"
)

func main() {
	env, err := notifier.SetupEnvironment(context.Background(), notifier.RegionalRules())
	if err != nil {
		hclog.Default().Error("setting up environment", "error", err)
		os.Exit(1)
	}

	lambda.Start(env.HandleRequest)
}
