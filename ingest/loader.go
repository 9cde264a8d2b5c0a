package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bearlink/profile"
)

// LoadProfiles reads every raw export file matching pattern under dir and
// concatenates their JSON arrays. Any unreadable or unparsable file aborts
// the load; ingestion must not start from a partial input set.
func LoadProfiles(dir, pattern string) ([]profile.Profile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad profile file pattern %q: %w", pattern, err)
	}

	var profiles []profile.Profile
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var batch []profile.Profile
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		profiles = append(profiles, batch...)
	}
	return profiles, nil
}
