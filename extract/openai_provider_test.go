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
	"testing"

	"github.com/openai/openai-go/v2/packages/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModelDefaultsToInstantModel(t *testing.T) {
	client := makeOpenaiClientWithResponse(t, fakeChatCompletion("[]", false))
	provider := NewGroqProvider(GroqProviderParams{OpenaiClient: &client})

	model, err := provider.GetModel("")
	require.NoError(t, err)

	chatModel, ok := model.(OpenAIChatCompletionsModel)
	require.True(t, ok)
	assert.Equal(t, DefaultModel, string(chatModel.Model))
}

func TestGetModelKeepsExplicitName(t *testing.T) {
	client := makeOpenaiClientWithResponse(t, fakeChatCompletion("[]", false))
	provider := NewGroqProvider(GroqProviderParams{OpenaiClient: &client})

	model, err := provider.GetModel("llama-3.3-70b-versatile")
	require.NoError(t, err)

	chatModel, ok := model.(OpenAIChatCompletionsModel)
	require.True(t, ok)
	assert.Equal(t, "llama-3.3-70b-versatile", string(chatModel.Model))
}

func TestNewGroqProviderRejectsConflictingParams(t *testing.T) {
	client := makeOpenaiClientWithResponse(t, fakeChatCompletion("[]", false))

	assert.Panics(t, func() {
		NewGroqProvider(GroqProviderParams{
			APIKey:       param.NewOpt("key"),
			OpenaiClient: &client,
		})
	})
}

func TestGetClientDefaultsToGroqBaseURL(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "test-key")

	provider := NewGroqProvider(GroqProviderParams{})
	client := provider.getClient()
	assert.Equal(t, DefaultBaseURL, client.BaseURL.Or(""))
}

func TestGetClientIsLazyAndCached(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "test-key")

	provider := NewGroqProvider(GroqProviderParams{})
	require.Nil(t, provider.client)

	first := provider.getClient()
	second := provider.getClient()
	assert.Equal(t, first, second)
	assert.NotNil(t, provider.client)
}

func TestGetClientMissingKeyIsNotValidated(t *testing.T) {
	// Absence of the credential is not an error here; it surfaces only as
	// an authentication failure from the remote call.
	t.Setenv(APIKeyEnvVar, "")

	provider := NewGroqProvider(GroqProviderParams{})
	model, err := provider.GetModel("")
	require.NoError(t, err)
	assert.NotNil(t, model)
}
