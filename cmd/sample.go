package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sow-cli/internal/sample"
)

var sampleOutDir string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write demo client record and documents to a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		docsDir := filepath.Join(sampleOutDir, "docs")
		if err := os.MkdirAll(docsDir, 0o755); err != nil {
			return eris.Wrap(err, "create output dir")
		}

		record := sample.Client()
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal client record")
		}
		clientPath := filepath.Join(sampleOutDir, "client.json")
		if err := os.WriteFile(clientPath, data, 0o644); err != nil {
			return eris.Wrap(err, "write client record")
		}

		for _, doc := range sample.Documents() {
			path := filepath.Join(docsDir, doc.ID+".txt")
			if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
				return eris.Wrap(err, "write document")
			}
		}

		zap.L().Info("sample data written",
			zap.String("client", clientPath),
			zap.String("docs", docsDir),
		)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOutDir, "out", "sample-data", "output directory")
	rootCmd.AddCommand(sampleCmd)
}
