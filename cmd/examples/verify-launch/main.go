// Command verify-launch checks a recorded launch parameter string against a
// consumer secret and reports why verification failed, if it did.
//
//	verify-launch --url https://tool.example.com/lti_launch \
//	    --secret my-secret --params 'oauth_consumer_key=...&oauth_signature=...'
//
// Omit --params to read the parameter string from stdin. Exits 0 for a valid
// launch, 1 otherwise.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/lti-tools/lti-go/pkg/verifier"
)

// Config holds all configuration
type Config struct {
	Method string `koanf:"method"`
	URL    string `koanf:"url"`
	Secret string `koanf:"secret"`
	Params string `koanf:"params"`
}

func main() {
	k := koanf.New(".")
	flags := pflag.NewFlagSet("verify-launch", pflag.ContinueOnError)

	flags.String("method", "POST", "HTTP method of the launch")
	flags.String("url", "", "launch URL the signature covers")
	flags.String("secret", "", "shared consumer secret")
	flags.String("params", "", "form-encoded launch parameters (default: stdin)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := k.Load(env.Provider("LTI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LTI_")), "_", "-", -1)
	}), nil); err != nil {
		fmt.Fprintln(os.Stderr, "error loading env:", err)
		os.Exit(1)
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		fmt.Fprintln(os.Stderr, "error loading flags:", err)
		os.Exit(1)
	}

	var conf Config
	if err := k.Unmarshal("", &conf); err != nil {
		fmt.Fprintln(os.Stderr, "error unmarshaling config:", err)
		os.Exit(1)
	}

	if conf.URL == "" || conf.Secret == "" {
		fmt.Fprintln(os.Stderr, "--url and --secret are required")
		os.Exit(1)
	}

	params := conf.Params
	if params == "" {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		if scanner.Scan() {
			params = strings.TrimSpace(scanner.Text())
		}
	}

	v := verifier.NewDefaultLaunchVerifier()
	if err := v.Explain(conf.Method, conf.URL, params, conf.Secret); err != nil {
		fmt.Println("invalid launch:", err)
		os.Exit(1)
	}
	fmt.Println("valid launch")
}
