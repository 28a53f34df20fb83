// Copyright (C) 2026 LTI Tools Project
//
// This file is part of lti-go.
//
// lti-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lti-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with lti-go.  If not, see <https://www.gnu.org/licenses/>.

// Command sign-launch signs an LTI launch the way a Tool Consumer does and
// prints the form-encoded parameter string.
//
// Flags can also be set through LTI_ environment variables (LTI_SECRET, ...):
//
//	sign-launch --url https://tool.example.com/lti_launch \
//	    --consumer-key my-key --secret my-secret \
//	    --param resource_link_id=rl-1 --param user_id=u-1
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/lti-tools/lti-go/pkg/launch"
	"github.com/lti-tools/lti-go/pkg/signer"
)

// Config holds all configuration
type Config struct {
	Method      string   `koanf:"method"`
	URL         string   `koanf:"url"`
	ConsumerKey string   `koanf:"consumer-key"`
	Secret      string   `koanf:"secret"`
	Params      []string `koanf:"param"`
	Timestamp   int64    `koanf:"timestamp"`
	Nonce       string   `koanf:"nonce"`
}

func main() {
	k := koanf.New(".")
	flags := pflag.NewFlagSet("sign-launch", pflag.ContinueOnError)

	flags.String("method", "POST", "HTTP method of the launch")
	flags.String("url", "", "launch URL the signature covers")
	flags.String("consumer-key", "", "OAuth consumer key")
	flags.String("secret", "", "shared consumer secret")
	flags.StringArray("param", nil, "launch parameter as key=value, repeatable")
	flags.Int64("timestamp", 0, "pin oauth_timestamp (default: now)")
	flags.String("nonce", "", "pin oauth_nonce (default: random)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Load environment variables, then flags on top
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

	if conf.URL == "" || conf.ConsumerKey == "" || conf.Secret == "" {
		fmt.Fprintln(os.Stderr, "--url, --consumer-key and --secret are required")
		os.Exit(1)
	}

	var params launch.ParameterSet
	for _, p := range conf.Params {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid --param %q, want key=value\n", p)
			os.Exit(1)
		}
		params = params.Add(key, value)
	}

	s := signer.NewDefaultLaunchSigner()
	signed, err := s.SignLaunch(conf.Method, conf.URL, params, conf.ConsumerKey, conf.Secret, &signer.SigningOptions{
		Timestamp: conf.Timestamp,
		Nonce:     conf.Nonce,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "signing failed:", err)
		os.Exit(1)
	}

	fmt.Println(signed.Encode())
}
