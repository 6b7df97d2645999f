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
	"context"

	"github.com/nlpodyssey/finquery-go/modelsettings"
	"github.com/nlpodyssey/finquery-go/usage"
)

// Model is the base interface for calling an LLM completion endpoint.
type Model interface {
	// Complete sends a single prompt to the model and returns its raw output.
	Complete(context.Context, CompletionParams) (*CompletionResponse, error)
}

type CompletionParams struct {
	// The fully-formatted prompt to send.
	Prompt string

	// The model settings to use.
	ModelSettings modelsettings.ModelSettings
}

// CompletionResponse is the raw result of one completion call. Output is the
// model's text exactly as produced, with no parsing or shape checks applied.
type CompletionResponse struct {
	Output string
	Usage  *usage.Usage
}

// ModelProvider is the base interface for a model provider.
// It is responsible for looking up Models by name.
type ModelProvider interface {
	// GetModel returns a model by name.
	GetModel(modelName string) (Model, error)
}
