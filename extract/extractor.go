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
	"log/slog"

	"github.com/google/uuid"
	"github.com/nlpodyssey/finquery-go/modelsettings"
)

// Extractor turns a free-text query about a company's financial performance
// into structured extraction records, by prompting a completion model. It
// holds no state across queries beyond the configured model.
type Extractor struct {
	// Prompts renders the instruction prompt. Defaults to NewPromptBuilder().
	Prompts *PromptBuilder

	// Model is the completion model to invoke.
	Model Model

	// Settings are applied to every completion call.
	Settings modelsettings.ModelSettings
}

func NewExtractor(model Model) *Extractor {
	return &Extractor{
		Prompts: NewPromptBuilder(),
		Model:   model,
	}
}

// ProcessQuery formats the query into a prompt, invokes the model once, and
// returns the raw output untouched. It never returns a Go error: a failed
// remote call is captured in the result's Err as a TransportError. There are
// no retries and no timeout override; cancellation is the caller's ctx.
func (e *Extractor) ProcessQuery(ctx context.Context, query string) *QueryResult {
	logger := Logger().With(slog.String("query_id", uuid.NewString()))
	logger.Info("Processing Query...")

	prompts := e.Prompts
	if prompts == nil {
		prompts = NewPromptBuilder()
	}
	prompt := prompts.Build(query)

	response, err := e.Model.Complete(ctx, CompletionParams{
		Prompt:        prompt,
		ModelSettings: e.Settings,
	})
	if err != nil {
		resultErr := TransportErrorf("Failed to retrieve data from the LLM API : %v", err)
		logger.Error(resultErr.Error())
		return &QueryResult{Err: resultErr}
	}

	logger.Info("Query Processed Successfully!")
	return &QueryResult{
		Output: response.Output,
		Usage:  response.Usage,
	}
}

// ProcessAndParse is ProcessQuery followed by schema validation of the model
// output. A shape violation is reported as a ModelBehaviorError on the
// result, with the raw output preserved for inspection.
func (e *Extractor) ProcessAndParse(ctx context.Context, query string) *QueryResult {
	result := e.ProcessQuery(ctx, query)
	if result.Failed() {
		return result
	}

	records, err := ParseRecords(result.Output)
	if err != nil {
		result.Err = err
		return result
	}
	result.Records = records
	return result
}
