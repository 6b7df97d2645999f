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
	"encoding/json"
	"fmt"
	"strings"
)

func indent(text string, indentLevel int) string {
	indentString := strings.Repeat("  ", indentLevel)

	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(indentString)
		sb.WriteString(line)
	}
	return sb.String()
}

func PrettyPrintResult(result *QueryResult) string {
	var sb strings.Builder

	sb.WriteString("QueryResult:")
	if result.Failed() {
		_, _ = fmt.Fprintf(&sb, "\n- Error: %s", result.ErrorMessage())
	}
	if result.Output != "" {
		sb.WriteString("\n- Raw output:\n")
		sb.WriteString(indent(strings.TrimSuffix(result.Output, "\n"), 2))
	}
	if result.Records != nil {
		_, _ = fmt.Fprintf(&sb, "\n- %d extraction record(s):\n", len(result.Records))
		sb.WriteString(indent(strings.TrimSuffix(SimplePrettyJSONMarshal(result.Records), "\n"), 2))
	}
	if result.Usage != nil {
		_, _ = fmt.Fprintf(
			&sb, "\n- Usage: %d input token(s), %d output token(s)",
			result.Usage.InputTokens, result.Usage.OutputTokens,
		)
	}

	return sb.String()
}

func SimplePrettyJSONMarshal(v any) string {
	s, err := PrettyJSONMarshal(v)
	if err != nil {
		return fmt.Sprintf("<<%s>>", err)
	}
	return s
}

func PrettyJSONMarshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	return buf.String(), err
}
