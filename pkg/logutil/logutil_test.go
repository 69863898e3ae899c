// Copyright 2023 Vellum Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogConfigAdjust(t *testing.T) {
	var cfg LogConfig
	cfg.Adjust()
	require.Equal(t, "info", cfg.Level)
	require.Equal(t, "console", cfg.Format)
	require.Equal(t, 512, cfg.MaxSize)

	cfg = LogConfig{Level: "debug", Format: "json", MaxSize: 8}
	cfg.Adjust()
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 8, cfg.MaxSize)
}

func TestGetLevelFallback(t *testing.T) {
	cfg := LogConfig{Level: "whatever"}
	require.Equal(t, zapcore.InfoLevel, cfg.getLevel().Level())

	cfg = LogConfig{Level: "error"}
	require.Equal(t, zapcore.ErrorLevel, cfg.getLevel().Level())
}

func TestGlobalLoggerSetup(t *testing.T) {
	SetupGlobalLogger(LogConfig{Level: "debug"})
	logger := GetGlobalLogger()
	require.NotNil(t, logger)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	SetupGlobalLogger(LogConfig{Level: "warn"})
	require.False(t, GetGlobalLogger().Core().Enabled(zapcore.InfoLevel))
}
