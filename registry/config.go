/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package registry

import (
	"errors"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/goccy/go-yaml"
)

// DefaultQueryTypeName is the name of the query root when Config.QueryType is empty.
const DefaultQueryTypeName = "Query"

// Config provides specification to build a Registry.
type Config struct {
	// Name of the query root type; Default to DefaultQueryTypeName.
	QueryType string `yaml:"query"`

	// Name of the mutation root type; Empty means the schema has no mutation root.
	MutationType string `yaml:"mutation"`

	// Name of the subscription root type; Empty means the schema has no subscription root.
	SubscriptionType string `yaml:"subscription"`

	// EnableFederation exposes `_service` on the query root even if no type declares a key.
	EnableFederation bool `yaml:"federation"`

	// IgnoreNameConflicts lists names that may be registered by more than one origin.
	IgnoreNameConflicts []string `yaml:"ignoreNameConflicts"`

	// Logger receives construction events. Default to logr.Discard().
	Logger logr.Logger `yaml:"-"`
}

// LoadConfig reads a Config in YAML from r. Unknown keys are rejected. An empty document yields the
// default Config.
func LoadConfig(r io.Reader) (*Config, error) {
	config := &Config{}
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(config); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, NewError("invalid registry config", Op("registry.LoadConfig"), ErrKindValidation, err)
		}
	}
	config.setDefaults()
	return config, nil
}

// LoadConfigFile is a convenient wrapper of LoadConfig that reads from the file at path.
func LoadConfigFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewError("cannot open registry config", Op("registry.LoadConfigFile"), err)
	}
	defer file.Close()
	return LoadConfig(file)
}

func (config *Config) setDefaults() {
	if len(config.QueryType) == 0 {
		config.QueryType = DefaultQueryTypeName
	}
	if config.Logger.GetSink() == nil {
		config.Logger = logr.Discard()
	}
}

// rootTypeNames returns names of the root operation types in the order of query, mutation and
// subscription.
func (config *Config) rootTypeNames() []string {
	names := []string{config.QueryType}
	if len(config.MutationType) > 0 {
		names = append(names, config.MutationType)
	}
	if len(config.SubscriptionType) > 0 {
		names = append(names, config.SubscriptionType)
	}
	return names
}
