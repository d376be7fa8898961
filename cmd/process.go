package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/sow-cli/internal/model"
	"github.com/sells-group/sow-cli/internal/pipeline"
)

var (
	processClientFile string
	processDocsDir    string
	processNoEnhance  bool
	processJSONOut    bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the SOW pipeline for a single client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		record, err := loadClientRecord(processClientFile)
		if err != nil {
			return err
		}

		docs, err := loadDocuments(processDocsDir)
		if err != nil {
			return err
		}

		p, err := initPipeline()
		if err != nil {
			return err
		}
		p.Enhance = !processNoEnhance

		result, err := p.ProcessClient(ctx, record, docs)
		if err != nil {
			return eris.Wrap(err, "process client")
		}

		if processJSONOut {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal result")
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(pipeline.FormatReport(record, result))
		return nil
	},
}

// loadClientRecord reads a client record JSON file.
func loadClientRecord(path string) (*model.ClientRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read client record")
	}
	var record model.ClientRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, eris.Wrap(err, "parse client record")
	}
	return &record, nil
}

// loadDocuments reads every .txt file in the directory as one document,
// in file-name order, using the base name (without extension) as the id.
func loadDocuments(dir string) ([]model.Document, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "read documents dir")
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([]model.Document, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, eris.Wrap(err, "read document")
		}
		docs = append(docs, model.Document{
			ID:      strings.TrimSuffix(name, ".txt"),
			Content: string(content),
		})
	}
	return docs, nil
}

func init() {
	processCmd.Flags().StringVar(&processClientFile, "client", "", "path to client record JSON (required)")
	processCmd.Flags().StringVar(&processDocsDir, "docs", "", "directory of .txt documents")
	processCmd.Flags().BoolVar(&processNoEnhance, "no-enhance", false, "skip the narrative rewrite pass")
	processCmd.Flags().BoolVar(&processJSONOut, "json", false, "print the raw result as JSON")
	_ = processCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(processCmd)
}
