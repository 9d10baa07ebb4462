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

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sharding"

var registry = prometheus.NewRegistry()

// Registry is the registry all go-sharding collectors are registered on, expose it with promhttp.HandlerFor.
func Registry() *prometheus.Registry {
	return registry
}

// DurationRecorder observes elapsed time in seconds.
type DurationRecorder struct {
	observer prometheus.Observer
}

func NewDurationRecorder(observer prometheus.Observer) DurationRecorder {
	return DurationRecorder{observer: observer}
}

func (d DurationRecorder) Record(duration time.Duration) {
	d.observer.Observe(duration.Seconds())
}

// Since records the time elapsed since start.
func (d DurationRecorder) Since(start time.Time) {
	d.Record(time.Since(start))
}
