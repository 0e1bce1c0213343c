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

// Package program defines the form a Wang machine program takes once it has
// been compiled: a static directed graph of labeled blocks. Each block is a
// sequence of primitive operations and ends in exactly one explicit
// terminator - an unconditional jump, a branch on the bit under the tape
// head, or a halt.
//
// The graph is data, not code. It can be validated for dangling transfers
// with Validate(), listed in source form with String(), rendered for
// graphviz with WriteGraph() and walked by the machine in the hardware
// package. Nothing in the graph changes while a machine runs it.
//
// The graph may and usually does contain cycles. Whether a program
// terminates is a property of the program, not of this representation.
package program
