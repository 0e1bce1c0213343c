// This file is part of Wmach.
//
// Wmach is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wmach is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wmach.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides an HTTP server running locally and offering
// runtime statistics. It is only functional when built with the statsview
// build constraint; without the constraint Launch() is a no-op and
// Available() returns false.
//
// Underlying functionality provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics are viewable at:
//
//	localhost:12601/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12601/debug/pprof/
package statsview
