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

package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	u := NewUsage()
	u.Add(&Usage{Requests: 1, InputTokens: 7, OutputTokens: 5, TotalTokens: 12})
	u.Add(&Usage{Requests: 1, InputTokens: 3, OutputTokens: 2, TotalTokens: 5})

	assert.Equal(t, Usage{
		Requests:     2,
		InputTokens:  10,
		OutputTokens: 7,
		TotalTokens:  17,
	}, *u)
}
