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

// Command launch-server runs a minimal LTI Tool Provider: it accepts launch
// POSTs on /lti_launch, verifies their signature, and greets the launching
// user.
//
//	launch-server --addr :8000 --consumer-key my-key --secret my-secret
//
// Behind a reverse proxy, pass --base-url with the public https URL so the
// reconstructed launch URL matches what the LMS signed.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lti-tools/lti-go/pkg/protocol"
	"github.com/lti-tools/lti-go/pkg/server"
	"github.com/lti-tools/lti-go/pkg/verifier"
)

// Config holds all configuration
type Config struct {
	Addr        string `koanf:"addr"`
	ConsumerKey string `koanf:"consumer-key"`
	Secret      string `koanf:"secret"`
	BaseURL     string `koanf:"base-url"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")
	flags := pflag.NewFlagSet("launch-server", pflag.ContinueOnError)

	flags.String("addr", ":8000", "listen address")
	flags.String("consumer-key", "", "OAuth consumer key to accept")
	flags.String("secret", "", "shared consumer secret")
	flags.String("base-url", "", "public base URL when behind a reverse proxy")

	if err := flags.Parse(os.Args[1:]); err != nil {
		logger.Fatal().Err(err).Msg("error parsing flags")
	}

	if err := k.Load(env.Provider("LTI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LTI_")), "_", "-", -1)
	}), nil); err != nil {
		logger.Fatal().Err(err).Msg("error loading env")
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		logger.Fatal().Err(err).Msg("error loading flags")
	}

	var conf Config
	if err := k.Unmarshal("", &conf); err != nil {
		logger.Fatal().Err(err).Msg("error unmarshaling config")
	}

	if conf.ConsumerKey == "" || conf.Secret == "" {
		logger.Fatal().Msg("--consumer-key and --secret are required")
	}

	resolver := verifier.NewStaticSecretResolver(map[string]string{
		conf.ConsumerKey: conf.Secret,
	})
	middleware := server.NewLTIAuthMiddleware(resolver)
	middleware.SetLogger(logger)
	if conf.BaseURL != "" {
		middleware.SetBaseURL(conf.BaseURL)
	}

	launchHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, _ := server.LaunchFromContext(r.Context())
		req := protocol.FromParams(params)
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		consumerKey, _ := server.ConsumerKeyFromContext(r.Context())
		logger.Info().
			Str("consumer_key", consumerKey).
			Str("user_id", req.UserID).
			Str("context", req.ContextLabel).
			Strs("roles", req.Roles).
			Msg("verified launch")

		fmt.Fprintf(w, "Hello %s, welcome to %s\n", req.UserID, req.ContextTitle)
	})

	mux := http.NewServeMux()
	mux.Handle("/lti_launch", middleware.Wrap(launchHandler))

	logger.Info().Str("addr", conf.Addr).Msg("Tool Provider listening")
	if err := http.ListenAndServe(conf.Addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
