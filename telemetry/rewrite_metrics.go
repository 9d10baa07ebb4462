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

package telemetry

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultSuccess    = "success"
	ResultConflict   = "conflict"
	ResultOutOfRange = "out_of_range"
)

var (
	RewriteStatements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rewrite",
		Name:      "statements_total",
		Help:      "Rewritten statements by result.",
	}, []string{"result"})

	RewriteTokens = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rewrite",
		Name:      "tokens_total",
		Help:      "Tokens generated for rewritten statements.",
	})

	RewriteRouteUnits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rewrite",
		Name:      "route_units_total",
		Help:      "Per route unit SQL produced by the rewriter.",
	})

	RewriteDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rewrite",
		Name:      "duration_seconds",
		Help:      "Time spent generating tokens and applying them for one statement.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)

func init() {
	registry.MustRegister(RewriteStatements, RewriteTokens, RewriteRouteUnits, RewriteDuration)
}
