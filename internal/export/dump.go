package export

import (
	"encoding/json"
	"os"

	"github.com/spigell/career-advisor/internal/recommend"
)

// DumpToTmpFile writes the result as indented JSON into a new temporary file
// and returns its name.
func DumpToTmpFile(result *recommend.Result) (string, error) {
	file, err := os.CreateTemp("", "recommendation_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}
	return file.Name(), nil
}
