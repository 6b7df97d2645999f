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
	"os"

	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
)

const (
	// DefaultModel is the instant-response model used when no name is given.
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// APIKeyEnvVar is the environment variable holding the completion
	// provider credential. It is read once, when the first model is built.
	APIKeyEnvVar = "GROQ_API_KEY"
)

type GroqProviderParams struct {
	// The API key to use for the client. If not provided, we will read it
	// from the GROQ_API_KEY environment variable.
	APIKey param.Opt[string]

	// The base URL to use for the client. If not provided, we will use
	// Groq's OpenAI-compatible endpoint.
	BaseURL param.Opt[string]

	// An optional client to use. If not provided, we will create a new
	// client using the APIKey and BaseURL.
	OpenaiClient *OpenaiClient
}

// GroqProvider builds Models that talk to Groq's hosted completion service.
type GroqProvider struct {
	params GroqProviderParams
	client *OpenaiClient
}

// NewGroqProvider creates a new Groq provider.
func NewGroqProvider(params GroqProviderParams) *GroqProvider {
	if params.OpenaiClient != nil && (params.APIKey.Valid() || params.BaseURL.Valid()) {
		panic(errors.New("GroqProvider: don't provide APIKey or BaseURL if you provide OpenaiClient"))
	}

	return &GroqProvider{
		params: params,
		client: params.OpenaiClient,
	}
}

func (provider *GroqProvider) GetModel(modelName string) (Model, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	return NewOpenAIChatCompletionsModel(modelName, provider.getClient()), nil
}

// We lazy load the client in case you never actually use GroqProvider.
// A missing API key is not validated here; it surfaces as an authentication
// failure from the remote call.
func (provider *GroqProvider) getClient() OpenaiClient {
	if provider.client == nil {
		var apiKey string
		if provider.params.APIKey.Valid() {
			apiKey = provider.params.APIKey.Value
		} else {
			apiKey = os.Getenv(APIKeyEnvVar)
			if apiKey == "" {
				Logger().Warn(fmt.Sprintf("GroqProvider: an API key is missing, set %s", APIKeyEnvVar))
			}
		}

		baseURL := provider.params.BaseURL.Or(DefaultBaseURL)

		client := NewOpenaiClient(
			param.NewOpt(baseURL),
			option.WithAPIKey(apiKey),
		)
		provider.client = &client
	}
	return *provider.client
}
