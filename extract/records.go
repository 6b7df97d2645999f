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
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// ExtractionRecord is one structured result extracted from a query: a
// company, the requested performance metric, and the date range it covers.
// The JSON keys match the wire shape the model is instructed to produce,
// spaces included.
type ExtractionRecord struct {
	Entity    string `json:"Entity"`
	Metric    string `json:"Metric"`
	StartDate string `json:"Start Date" jsonschema:"format=date"`
	EndDate   string `json:"End Date" jsonschema:"format=date"`
}

// recordsSchema is the JSON schema for the expected model output: an array
// of extraction record objects.
var recordsSchema = buildRecordsSchema()

func buildRecordsSchema() map[string]any {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(ExtractionRecord{})

	b, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Errorf("failed to JSON-marshal extraction record schema: %w", err))
	}
	var itemSchema map[string]any
	err = json.Unmarshal(b, &itemSchema)
	if err != nil {
		panic(fmt.Errorf("failed to JSON-unmarshal extraction record schema: %w", err))
	}
	delete(itemSchema, "$schema")
	delete(itemSchema, "$id")

	return map[string]any{
		"type":  "array",
		"items": itemSchema,
	}
}

// ParseRecords validates a raw model output against the extraction record
// schema and unmarshals it. It returns a ModelBehaviorError when the output
// is not a valid JSON array of extraction records, including when the model
// wrapped the JSON in surrounding prose.
func ParseRecords(output string) ([]ExtractionRecord, error) {
	schemaLoader := gojsonschema.NewGoLoader(recordsSchema)
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		return nil, UserErrorf("failed to load and compile extraction record schema: %w", err)
	}

	err = ValidateJSON(schema, output)
	if err != nil {
		return nil, fmt.Errorf("extraction record validation error: %w", err)
	}

	var records []ExtractionRecord
	err = json.Unmarshal([]byte(output), &records)
	if err != nil {
		return nil, ModelBehaviorErrorf("failed to unmarshal extraction records: %w", err)
	}
	return records, nil
}
