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
	"encoding/json"

	"github.com/nlpodyssey/finquery-go/usage"
)

// QueryResult is the outcome of processing one query. It unifies the success
// and failure variants in a single type: exactly one of Output or Err is
// meaningful, except that a parse failure keeps the raw Output alongside Err.
type QueryResult struct {
	// Output is the raw model output, exactly as produced. It is expected to
	// be a JSON array of extraction records, but that is not enforced here.
	Output string

	// Records is populated only when parsing was requested and succeeded.
	Records []ExtractionRecord

	// Usage is the token accounting of the underlying completion call.
	Usage *usage.Usage

	// Err is the failure variant: a TransportError when the remote call
	// failed, or a ModelBehaviorError when parsing was requested and the
	// output did not match the documented shape.
	Err error
}

// Failed reports whether the result carries the failure variant.
func (r *QueryResult) Failed() bool {
	return r.Err != nil
}

// ErrorMessage returns the failure description, or "" on success.
func (r *QueryResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// MarshalJSON renders the failure variant as an object with the single key
// "error". A successful result marshals its records when present, otherwise
// the raw output string.
func (r *QueryResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(map[string]string{"error": r.ErrorMessage()})
	}
	if r.Records != nil {
		return json.Marshal(r.Records)
	}
	return json.Marshal(r.Output)
}
