// Package profile manages named option profiles and renders options for
// the storeopts command line tool.
//
// # Profile Files
//
// Profiles live in a YAML file (~/.storeopts/profiles.yaml by default,
// or STOREOPTS_PROFILES):
//
//	profiles:
//	  - name: minio
//	    provider: aws
//	    default: true
//	    options:
//	      endpoint: http://localhost:9000
//	      region: us-east-1
//	      secret_access_key: minioadmin
//	    transport:
//	      allow_http: "true"
//
// Load a file, pick a profile and build options from it:
//
//	f, err := profile.Load(profile.DefaultPath())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p, err := f.Get("minio")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts, err := p.Config().Build(ctx)
//
// The file is written with 0600 permissions since profiles usually hold
// credentials.
//
// # Output Formatting
//
// Use formatters for human-readable or JSON output. Values of secret keys
// are masked unless showSecrets is set:
//
//	formatter := profile.NewFormatter(jsonOutput, quiet)
//	formatter.FormatOptions(os.Stdout, storeopts.CapabilityAWS, entries, false)
package profile
