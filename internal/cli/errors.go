package cli

import "errors"

var ErrMissingSubscription = errors.New("subscription id is required: use --subscription or AZURE_SUBSCRIPTION_ID")
