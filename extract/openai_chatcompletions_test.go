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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/nlpodyssey/finquery-go/modelsettings"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOpenaiClientWithResponse(t *testing.T, v any) OpenaiClient {
	t.Helper()

	body, err := json.Marshal(v)
	require.NoError(t, err)

	return OpenaiClient{
		BaseURL: param.NewOpt("https://fake"),
		Client: openai.NewClient(
			option.WithMiddleware(func(req *http.Request, _ option.MiddlewareNext) (*http.Response, error) {
				return &http.Response{
					StatusCode:    http.StatusOK,
					Body:          io.NopCloser(bytes.NewReader(body)),
					ContentLength: int64(len(body)),
					Header: http.Header{
						"Content-Type": []string{"application/json"},
					},
				}, nil
			}),
		),
	}
}

func fakeChatCompletion(content string, withUsage bool) map[string]any {
	type m = map[string]any
	msg := m{"role": "assistant", "content": content}
	choice := m{"index": 0, "finish_reason": "stop", "message": msg}
	chat := m{
		"id":      "resp-id",
		"created": 0,
		"model":   "fake",
		"object":  "chat.completion",
		"choices": []any{choice},
	}
	if withUsage {
		chat["usage"] = m{"prompt_tokens": 7, "completion_tokens": 5, "total_tokens": 12}
	}
	return chat
}

func TestCompleteReturnsTextAndUsage(t *testing.T) {
	client := makeOpenaiClientWithResponse(t, fakeChatCompletion("[]", true))
	model := NewOpenAIChatCompletionsModel(DefaultModel, client)

	resp, err := model.Complete(context.Background(), CompletionParams{Prompt: "prompt"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "[]", resp.Output)
	assert.Equal(t, uint64(1), resp.Usage.Requests)
	assert.Equal(t, uint64(7), resp.Usage.InputTokens)
	assert.Equal(t, uint64(5), resp.Usage.OutputTokens)
	assert.Equal(t, uint64(12), resp.Usage.TotalTokens)
}

func TestCompleteWithoutUsage(t *testing.T) {
	// With no usage on the completion, usage defaults to zeros.
	client := makeOpenaiClientWithResponse(t, fakeChatCompletion("Hello", false))
	model := NewOpenAIChatCompletionsModel(DefaultModel, client)

	resp, err := model.Complete(context.Background(), CompletionParams{Prompt: "prompt"})
	require.NoError(t, err)

	assert.Equal(t, "Hello", resp.Output)
	assert.Equal(t, uint64(0), resp.Usage.Requests)
	assert.Equal(t, uint64(0), resp.Usage.TotalTokens)
}

func TestCompleteNoChoices(t *testing.T) {
	type m = map[string]any
	chat := m{
		"id":      "resp-id",
		"created": 0,
		"model":   "fake",
		"object":  "chat.completion",
		"choices": []any{},
	}
	client := makeOpenaiClientWithResponse(t, chat)
	model := NewOpenAIChatCompletionsModel(DefaultModel, client)

	_, err := model.Complete(context.Background(), CompletionParams{Prompt: "prompt"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "no choices")
}

func TestCompleteSendsPromptAndSettings(t *testing.T) {
	// The request body must carry the model identifier, the prompt as a
	// single user message, and the configured sampling settings.

	responseBody, err := json.Marshal(fakeChatCompletion("[]", true))
	require.NoError(t, err)

	var captured map[string]any
	client := OpenaiClient{
		BaseURL: param.NewOpt("https://fake"),
		Client: openai.NewClient(
			option.WithMiddleware(func(req *http.Request, _ option.MiddlewareNext) (*http.Response, error) {
				reqBody, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(reqBody, &captured))
				return &http.Response{
					StatusCode:    http.StatusOK,
					Body:          io.NopCloser(bytes.NewReader(responseBody)),
					ContentLength: int64(len(responseBody)),
					Header: http.Header{
						"Content-Type": []string{"application/json"},
					},
				}, nil
			}),
		),
	}

	model := NewOpenAIChatCompletionsModel(DefaultModel, client)
	_, err = model.Complete(context.Background(), CompletionParams{
		Prompt: "Extract things",
		ModelSettings: modelsettings.ModelSettings{
			Temperature: param.NewOpt(0.3),
			MaxTokens:   param.NewOpt(int64(512)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, captured["model"])
	assert.Equal(t, 0.3, captured["temperature"])
	assert.Equal(t, float64(512), captured["max_tokens"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	message, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "Extract things", message["content"])
}

func TestCompleteTransportError(t *testing.T) {
	client := OpenaiClient{
		BaseURL: param.NewOpt("https://fake"),
		Client: openai.NewClient(
			option.WithMaxRetries(0),
			option.WithMiddleware(func(*http.Request, option.MiddlewareNext) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}),
		),
	}
	model := NewOpenAIChatCompletionsModel(DefaultModel, client)

	_, err := model.Complete(context.Background(), CompletionParams{Prompt: "prompt"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}
