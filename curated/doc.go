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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values and returns an error. Unlike fmt.Errorf() the pattern doubles as the
// identity of the error.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	e := curated.Errorf("tape: head out of bounds (%d)", h)
//
//	if curated.Is(e, "tape: head out of bounds (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks the entire error chain, so a
// curated error wrapped inside another curated error can still be found.
// Packages in this project export the patterns of the errors they generate so
// that callers can distinguish failure kinds without string matching.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An uncurated error is one that no package in this project anticipated.
package curated
