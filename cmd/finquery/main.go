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

// Command finquery reads one financial performance query from standard input,
// sends it to the completion model and prints the raw structured result.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/nlpodyssey/finquery-go/extract"
)

func main() {
	// A missing .env file is fine; the credential may come from the
	// environment directly.
	_ = godotenv.Load()

	validate := flag.Bool("validate", false, "validate the model output against the extraction record schema")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	if *verbose {
		extract.EnableVerboseStdoutLogging()
	}

	provider := extract.NewGroqProvider(extract.GroqProviderParams{})
	model, err := provider.GetModel("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	extractor := extract.NewExtractor(model)

	fmt.Print("Enter your query (e.g., What was Microsoft's revenue in 2023?): ")
	_ = os.Stdout.Sync()

	line, _, err := bufio.NewReader(os.Stdin).ReadLine()
	if err != nil {
		panic(err)
	}
	query := string(line)

	ctx := context.Background()

	var result *extract.QueryResult
	if *validate {
		result = extractor.ProcessAndParse(ctx, query)
	} else {
		result = extractor.ProcessQuery(ctx, query)
	}

	if result.Failed() {
		fmt.Printf("Error: %s\n", result.ErrorMessage())
		return
	}
	fmt.Println(extract.PrettyPrintResult(result))
}
