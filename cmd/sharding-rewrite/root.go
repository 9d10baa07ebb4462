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

package main

import (
	"fmt"
	"strings"

	"github.com/endink/go-sharding/config"
	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/logging"
	"github.com/endink/go-sharding/parser"
	"github.com/endink/go-sharding/rewriting"
	"github.com/endink/go-sharding/routing"
	"github.com/spf13/cobra"
)

type rewriteOptions struct {
	configFiles []string
	routes      []string
	logLevel    string
	showKey     bool
}

func newRootCommand() *cobra.Command {
	opts := &rewriteOptions{}
	cmd := &cobra.Command{
		Use:   "sharding-rewrite [flags] <sql>",
		Short: "Rewrite a logic SQL statement into the SQL of every route unit",
		Long: `Rewrite a logic SQL statement into the SQL of every route unit.

The sharding rule is read from --config files, or from the default
configuration locations when no file is given. Every --route flag adds
one route unit written as "<data source>:<logic>=<actual>,...".`,
		Example: `  # Rewrite for one shard
  sharding-rewrite --config config.yaml --route ds0:t_order=t_order_0 "SELECT * FROM t_order WHERE id=1"

  # Rewrite for two shards and print the route unit keys
  sharding-rewrite -k --route ds0:t_order=t_order_0 --route ds1:t_order=t_order_1 "SELECT * FROM t_order"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.configFiles, "config", "c", nil, "configuration file, later files override earlier ones")
	flags.StringArrayVarP(&opts.routes, "route", "r", nil, "route unit, e.g. ds0:t_order=t_order_0,t_order_item=t_order_item_0")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level of all loggers")
	flags.BoolVarP(&opts.showKey, "key", "k", false, "prefix every SQL with its route unit key")
	return cmd
}

func runRewrite(cmd *cobra.Command, opts *rewriteOptions, sql string) error {
	if err := logging.SetLevelString("*", core.IfBlankAndTrim(opts.logLevel, "warn")); err != nil {
		return err
	}

	rule, err := loadRule(opts.configFiles)
	if err != nil {
		return err
	}

	units := make([]*routing.RouteUnit, 0, len(opts.routes))
	for _, r := range opts.routes {
		unit, e := routing.ParseRouteUnit(r)
		if e != nil {
			return e
		}
		units = append(units, unit)
	}

	ctx, err := parser.Bind(sql)
	if err != nil {
		return err
	}

	result, err := rewriting.NewRewritingEngine(rule).Rewrite(ctx, routing.NewRouteContext(units...))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range result.RouteSQLs() {
		if opts.showKey {
			_, _ = fmt.Fprintf(out, "%s\t%s\n", s.Key(), s.SQL)
		} else {
			_, _ = fmt.Fprintln(out, s.SQL)
		}
	}
	return nil
}

func loadRule(files []string) (*core.ShardingRule, error) {
	if len(files) == 0 {
		return config.LoadRule()
	}
	return config.NewRuleFromFiles(files...)
}
