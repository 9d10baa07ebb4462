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

package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var loggerMutex sync.RWMutex // guards access to global logger state

// loggers is the set of loggers in the system
var loggers = make(map[string]*zap.SugaredLogger)

var levels = make(map[string]zap.AtomicLevel)
var defaultLevel = zapcore.InfoLevel
var output = zapcore.AddSync(os.Stdout)
var format = ColorizedOutput

var DefaultLogger = GetLogger("sharding")

func newCore(f LogFormat, out zapcore.WriteSyncer, level zapcore.LevelEnabler) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch f {
	case JSONOutput:
		encoder = zapcore.NewJSONEncoder(encCfg)
	case PlaintextOutput:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewCore(encoder, out, level)
}

func GetLogger(name string) *zap.SugaredLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	log, ok := loggers[name]
	if !ok {
		level := zap.NewAtomicLevelAt(defaultLevel)
		levels[name] = level

		log = zap.New(newCore(format, output, level), zap.AddCaller()).
			Named(name).
			Sugar()

		loggers[name] = log
	}

	return log
}

// SetLevel changes the level of a named logger, "*" changes all existing loggers and the default.
func SetLevel(name string, level zapcore.Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if name == "*" {
		defaultLevel = level
		for _, l := range levels {
			l.SetLevel(level)
		}
		return
	}
	if l, ok := levels[name]; ok {
		l.SetLevel(level)
	}
}

// SetLevelString is SetLevel for textual levels such as "debug" or "warn".
func SetLevelString(name string, level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	SetLevel(name, l)
	return nil
}

// GetLevel returns the level of a named logger, the default level when it does not exist.
func GetLevel(name string) zapcore.Level {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	if l, ok := levels[name]; ok {
		return l.Level()
	}
	return defaultLevel
}
