// Package storeopts normalises untyped storage settings into validated,
// provider-specific configuration for Azure Blob Storage, Amazon S3 and
// Google Cloud Storage.
//
// Callers collect raw key/value pairs from wherever they like (files,
// environment, flags) and build a StoreOptions once. Keys are ASCII
// lowercased on the way in; when two pairs fold to the same key the later
// one wins. Nothing is checked at construction time.
//
// # Key Components
//
//   - RawOptions: immutable, insertion-ordered, lowercase-keyed snapshot
//   - StoreOptions: the snapshot plus a transport.Config and the set of
//     enabled capabilities
//   - schema.Schema: closed key vocabulary of one provider (see the azure,
//     aws and gcp packages)
//   - transport.Config: timeouts, pooling, proxy and retry settings shared
//     by every backend
//
// # Validation
//
// Each provider accessor validates the whole snapshot against that
// provider's schema. The first unrecognised key aborts the call with an
// *UnknownKeyError; no partial result is ever returned. The same snapshot
// may be valid for one provider and invalid for another.
//
// # Example Usage
//
//	opts := storeopts.New([]storeopts.Pair{
//	    {Key: "Region", Value: "us-east-1"},
//	    {Key: "Endpoint", Value: "http://localhost:9000"},
//	}, storeopts.WithCapabilities(storeopts.NewCapabilities(storeopts.CapabilityAWS)))
//
//	s3, err := opts.S3Options()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s3[aws.Region]) // us-east-1
//
// See the config package for loading settings from files, the environment
// and flags.
package storeopts
