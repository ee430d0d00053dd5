package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"toolbox/go-backend/pkg/models"
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// saveDownload writes a derived file into the output directory and reports its path.
func saveDownload(cmd *cobra.Command, d *models.Download) error {
	if d == nil {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(d.ContentBase64)
	if err != nil {
		return fmt.Errorf("decode %s: %w", d.FileName, err)
	}
	path := filepath.Join(outDir, filepath.Base(d.FileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "saved %s (%d bytes)\n", path, len(data))
	return err
}

func readUpload(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), data, nil
}

func parseFloatArg(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %q", name, raw)
	}
	return v, nil
}

func parseIntArg(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", name, raw)
	}
	return v, nil
}
