// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"strconv"

	"fillmore-labs.com/asyncname/internal/config"
)

// boolValue exposes one behavior bit as a boolean flag value.
type boolValue struct {
	flags *config.BitMask[config.Config]
	value config.Config
}

// Set implements [flag.Value].
func (f boolValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue) IsBoolFlag() bool { return true }

// parseBool accepts strconv's boolean spellings plus on/off.
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On":
		return true, nil
	case "off", "Off":
		return false, nil
	}

	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
	}

	return b, nil
}
