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

// Package compiler translates Wang machine source text into the block graph
// defined by the program package. Compilation happens entirely ahead of
// execution; the machine never sees source text.
//
// The source language:
//
//	+            set the bit under the head
//	-            clear the bit under the head
//	<            move the head one bit towards the start of the tape
//	>            move the head one bit towards the end of the tape
//	,            read a bit from input onto the tape
//	.            write the bit under the head to output
//	jmp t, f     transfer to label t if the bit under the head is set,
//	             to label f otherwise. ", f" can be omitted, in which
//	             case a clear bit falls through to the next statement
//	name:        declare a label. label characters are letters, digits,
//	             apostrophe and underscore
//	!            log the machine state (a debugging aid)
//	/* ... */    comment
//
// Program execution starts at the first statement and a program that runs
// off the end of its source halts cleanly.
package compiler
