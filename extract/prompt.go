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
	"fmt"
	"time"
)

// Worked examples shown to the model. They anchor the exact output shape,
// including the spaced "Start Date" / "End Date" keys.
const exampleAmazon = `- Query: "What was Amazon's revenue in 2023?"
  Expected Output: [{
    "Entity": "Amazon",
    "Metric": "revenue",
    "Start Date": "2023-01-01",
    "End Date": "2023-12-31"
}]`

const exampleFlipkart = `- Query: "How much profit did Flipkart make in 2022?"
  Expected Output: [{
    "Entity": "Flipkart",
    "Metric": "profit",
    "Start Date": "2022-01-01",
    "End Date": "2022-12-31"
}]`

const multiEntityExample = `[{
    "Entity": "Flipkart",
    "Metric": "profit",
    "Start Date": "2022-01-01",
    "End Date": "2022-12-31"
},
{
    "Entity": "Amazon",
    "Metric": "revenue",
    "Start Date": "2023-01-01",
    "End Date": "2023-12-31"
}]`

const promptTemplate = `Extract the following details from the query:
1. Entity (Company name)
2. Metric (Performance metric like revenue, profit, GMV, etc.)
3. Start Date (The start of the time period in YYYY-MM-DD format)
4. End Date (The end of the time period in YYYY-MM-DD format)

Example Queries:
%s

%s

Must remember these points:
Your task is to simply give json output of the query in expected format and nothing else.
If the user query does not explicitly mention the start date and/or end date, assume the following defaults:
- Start Date: %s (today's date minus one year)
- End Date: %s (today's date)
If the query contains multiple companies then create a separate object for each company and return the array of objects.
Format will look like this:
%s
Query:
"%s"
`

// PromptBuilder renders the extraction instructions for a raw user query.
// The zero value is ready to use; Now may be set to fix "today" in tests.
type PromptBuilder struct {
	// Now reports the current time. It defaults to time.Now.
	Now func() time.Time
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{Now: time.Now}
}

// Build returns the full instruction prompt for the given query. The default
// date range is computed here, at prompt-construction time: end = today,
// start = today minus 365 days, both rendered as YYYY-MM-DD literals.
func (b *PromptBuilder) Build(query string) string {
	nowFn := b.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	endDate := now.Format(time.DateOnly)
	startDate := now.AddDate(0, 0, -365).Format(time.DateOnly)

	return fmt.Sprintf(
		promptTemplate,
		exampleAmazon,
		exampleFlipkart,
		startDate,
		endDate,
		multiEntityExample,
		query,
	)
}
