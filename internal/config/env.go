// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// PORT is honoured only when SERVER_ADDRESS is unset; it becomes ":<port>".
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Port != 0 {
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(cfg.Port)
	}

	return nil
}
