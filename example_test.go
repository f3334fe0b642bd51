package storeopts_test

import (
	"errors"
	"fmt"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/aws"
)

func ExampleStoreOptions_S3Options() {
	opts := storeopts.New([]storeopts.Pair{
		{Key: "Region", Value: "us-east-1"},
		{Key: "ENDPOINT", Value: "http://localhost:9000"},
	})

	s3, err := opts.S3Options()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(s3[aws.Region])
	fmt.Println(s3[aws.Endpoint])
	// Output:
	// us-east-1
	// http://localhost:9000
}

func ExampleStoreOptions_AzureOptions_unknownKey() {
	opts := storeopts.New([]storeopts.Pair{
		{Key: "account_name", Value: "devstore"},
		{Key: "bad_key", Value: "x"},
	})

	_, err := opts.AzureOptions()

	var unknown *storeopts.UnknownKeyError
	if errors.As(err, &unknown) {
		fmt.Println(unknown.Key)
	}
	fmt.Println(err)
	// Output:
	// bad_key
	// unknown configuration key: "bad_key" is not a valid azure option
}

func ExampleWithCapabilities() {
	opts := storeopts.New(nil, storeopts.WithCapabilities(storeopts.NewCapabilities(storeopts.CapabilityGCP)))

	_, err := opts.S3Options()
	fmt.Println(errors.Is(err, storeopts.ErrCapabilityDisabled))
	fmt.Println(opts.Capabilities())
	// Output:
	// true
	// gcp
}
