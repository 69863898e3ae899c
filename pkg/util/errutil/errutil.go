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

package errutil

import (
	"context"
	"sync/atomic"
)

// Reporter receives every structured error built with a session context.
// depth is the number of constructor frames above the original call site.
type Reporter func(ctx context.Context, err error, depth int)

var reporter atomic.Value // Reporter

func init() {
	SetErrorReporter(noopReport)
}

func noopReport(context.Context, error, int) {}

// SetErrorReporter installs the process-wide error reporter.
func SetErrorReporter(r Reporter) {
	reporter.Store(r)
}

// ReportError forwards err to the installed reporter.
func ReportError(ctx context.Context, err error) {
	WithContextWithDepth(ctx, err, 1)
}

// WithContextWithDepth reports err and returns it unchanged, so it can be
// chained inside error constructors.
func WithContextWithDepth(ctx context.Context, err error, depth int) error {
	if err == nil {
		return nil
	}
	reporter.Load().(Reporter)(ctx, err, depth+1)
	return err
}
