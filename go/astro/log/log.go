/*
Copyright 2025 The Astrodate Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log is a thin adapter around glog, giving the project a
// single logging import and a way to expose the glog flags on a pflag
// FlagSet for cobra binaries.
package log

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Flush ensures any pending log I/O is written.
var Flush = glog.Flush

var (
	Info     = glog.Info
	Infof    = glog.Infof
	Warning  = glog.Warning
	Warningf = glog.Warningf
	Error    = glog.Error
	Errorf   = glog.Errorf
	Exitf    = glog.Exitf
)

// V reports whether verbose logging at the given level is enabled.
func V(level glog.Level) glog.Verbose {
	return glog.V(level)
}

// RegisterFlags installs the glog flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "v", "logtostderr", "alsologtostderr", "stderrthreshold", "log_dir":
			fs.AddGoFlag(f)
		}
	})
}
