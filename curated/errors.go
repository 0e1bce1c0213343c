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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The first argument is called a pattern
// rather than a format because the same string is later used to identify the
// error in the Is() and Has() functions.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the error message. Adjacent duplicate parts in the message
// chain are removed.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	t := make([]string, 0, len(p))
	for _, w := range p {
		if len(t) == 0 || t[len(t)-1] != w {
			t = append(t, w)
		}
	}

	return strings.Join(t, ": ")
}

// Unwrap returns the first wrapped error in the list of values, if any.
// Satisfies the interface expected by the errors package in the standard
// library.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the pattern appears anywhere in the error chain.
func Has(err error, pattern string) bool {
	for err != nil {
		if Is(err, pattern) {
			return true
		}

		er, ok := err.(curated)
		if !ok {
			return false
		}
		err = er.Unwrap()
	}

	return false
}
