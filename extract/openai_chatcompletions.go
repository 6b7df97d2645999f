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
	"reflect"

	"github.com/nlpodyssey/finquery-go/modelsettings"
	"github.com/nlpodyssey/finquery-go/usage"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIChatCompletionsModel calls an OpenAI-compatible chat completions
// endpoint with a single user message per request.
type OpenAIChatCompletionsModel struct {
	Model  openai.ChatModel
	client OpenaiClient
}

func NewOpenAIChatCompletionsModel(model openai.ChatModel, client OpenaiClient) OpenAIChatCompletionsModel {
	return OpenAIChatCompletionsModel{
		Model:  model,
		client: client,
	}
}

func (m OpenAIChatCompletionsModel) Complete(
	ctx context.Context,
	params CompletionParams,
) (*CompletionResponse, error) {
	body, opts := m.prepareRequest(params.Prompt, params.ModelSettings)

	response, err := m.client.Chat.Completions.New(ctx, *body, opts...)
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, NewModelBehaviorError("model returned a completion with no choices")
	}

	if DontLogModelData {
		Logger().Debug("LLM responded")
	} else {
		Logger().Debug("LLM responded", slog.String("message", SimplePrettyJSONMarshal(response.Choices[0].Message)))
	}

	u := usage.NewUsage()
	if !reflect.ValueOf(response.Usage).IsZero() {
		*u = usage.Usage{
			Requests:     1,
			InputTokens:  uint64(response.Usage.PromptTokens),
			OutputTokens: uint64(response.Usage.CompletionTokens),
			TotalTokens:  uint64(response.Usage.TotalTokens),
		}
	}

	return &CompletionResponse{
		Output: response.Choices[0].Message.Content,
		Usage:  u,
	}, nil
}

func (m OpenAIChatCompletionsModel) prepareRequest(
	prompt string,
	settings modelsettings.ModelSettings,
) (*openai.ChatCompletionNewParams, []option.RequestOption) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	}

	if DontLogModelData {
		Logger().Debug("Calling LLM")
	} else {
		Logger().Debug(
			"Calling LLM",
			slog.String("Messages", SimplePrettyJSONMarshal(messages)),
			slog.String("Model", string(m.Model)),
		)
	}

	params := &openai.ChatCompletionNewParams{
		Model:            m.Model,
		Messages:         messages,
		Temperature:      settings.Temperature,
		TopP:             settings.TopP,
		FrequencyPenalty: settings.FrequencyPenalty,
		PresencePenalty:  settings.PresencePenalty,
		MaxTokens:        settings.MaxTokens,
		Store:            settings.Store,
		Metadata:         settings.Metadata,
	}

	var opts []option.RequestOption
	for k, v := range settings.ExtraHeaders {
		opts = append(opts, option.WithHeader(k, v))
	}
	for k, v := range settings.ExtraQuery {
		opts = append(opts, option.WithQuery(k, v))
	}
	return params, opts
}
