package spec

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/specmock-project/specmock-go/pkg/logger"
)

// Load reads and parses the specification at the given location, which may be
// a local file path or an http(s) URL. The returned Contract is immutable.
func Load(location string) (*Contract, error) {
	data, err := readSpec(location)
	if err != nil {
		return nil, err
	}
	contract, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse specification %s: %w", location, err)
	}
	logger.Infof("loaded specification %s with %d operations", location, len(contract.Operations))
	return contract, nil
}

func readSpec(location string) ([]byte, error) {
	if isURL(location) {
		return downloadSpec(location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification file: %w", err)
	}
	return data, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// downloadSpec fetches a remote specification document.
func downloadSpec(url string) ([]byte, error) {
	logger.Infof("downloading specification from %s", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download specification from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download specification from %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification from %s: %w", url, err)
	}
	return data, nil
}
