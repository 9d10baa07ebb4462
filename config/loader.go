/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package config

import (
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/pingcap/errors"
	"go.uber.org/config"
)

const ruleKey = "rule"

// NewRuleFromYAML builds the sharding rule from the "rule" section of provider.
func NewRuleFromYAML(provider config.Provider) (*core.ShardingRule, error) {
	value := provider.Get(ruleKey)
	if !value.HasValue() {
		return nil, errors.Errorf("configuration section '%s' is missing", ruleKey)
	}
	settings := &RuleSettings{}
	if err := value.Populate(settings); err != nil {
		return nil, errors.Annotate(err, "read sharding rule settings fault")
	}
	return settings.Build()
}

func NewRuleFromString(ymlContent string) (*core.ShardingRule, error) {
	yml, err := config.NewYAML(config.Source(strings.NewReader(ymlContent)), config.Permissive())
	if err != nil {
		return nil, errors.Annotate(err, "parse yaml content fault")
	}
	return NewRuleFromYAML(yml)
}

// NewRuleFromFiles merges files in order, values of later files win.
func NewRuleFromFiles(files ...string) (*core.ShardingRule, error) {
	if len(files) == 0 {
		return nil, errors.New("no configuration file was given")
	}
	options := make([]config.YAMLOption, 0, len(files)+1)
	for _, f := range files {
		options = append(options, config.File(f))
	}
	options = append(options, config.Permissive())
	yml, err := config.NewYAML(options...)
	if err != nil {
		return nil, errors.Annotatef(err, "load configuration files fault, files: %s", strings.Join(files, ", "))
	}
	return NewRuleFromYAML(yml)
}

// LoadRule reads the rule from the existing files of DefaultConfigFileLocations.
func LoadRule() (*core.ShardingRule, error) {
	var found []string
	sb := core.NewStringBuilder()
	sb.WriteLine()
	sb.WriteLine("Search configuration locations:")
	for _, f := range DefaultConfigFileLocations() {
		if core.FileExists(f) {
			found = append(found, f)
			sb.WriteLine("[Found]:", f)
		} else {
			sb.WriteLine("[Not Found]:", f)
		}
	}
	logger.Info(sb.String())

	if len(found) == 0 {
		return nil, errors.New("no configuration file was found")
	}
	return NewRuleFromFiles(found...)
}
