// Copyright 2025 The NLP Odyssey Authors
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

package extract

import (
	"errors"
	"fmt"
)

// TransportError is returned when the remote completion endpoint cannot be
// reached or the call fails, e.g. connection refused or an HTTP error status.
type TransportError error

func NewTransportError(message string) TransportError {
	return TransportError(errors.New(message))
}

func TransportErrorf(format string, a ...any) TransportError {
	return TransportError(fmt.Errorf(format, a...))
}

// ModelBehaviorError is returned when the model does something unexpected,
// e.g. producing output that is not a valid JSON array of extraction records.
type ModelBehaviorError error

func NewModelBehaviorError(message string) ModelBehaviorError {
	return ModelBehaviorError(errors.New(message))
}

func ModelBehaviorErrorf(format string, a ...any) ModelBehaviorError {
	return ModelBehaviorError(fmt.Errorf(format, a...))
}

// UserError is returned when the user makes an error using the library.
type UserError error

func NewUserError(message string) UserError {
	return UserError(errors.New(message))
}

func UserErrorf(format string, a ...any) UserError {
	return UserError(fmt.Errorf(format, a...))
}
