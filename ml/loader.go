package ml

import (
	"fmt"
	"strings"
)

// LoadClassifier tries each candidate artifact path in order and returns the
// first forest that loads. The fallback mirrors running from the repository
// root versus inside a container, where the artifact sits beside the binary.
func LoadClassifier(paths ...string) (Classifier, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no model paths configured")
	}
	var attempts []string
	for _, path := range paths {
		rf := &RandomForest{}
		if err := rf.Load(path); err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		return rf, nil
	}
	return nil, fmt.Errorf("model artifact not found (%s)", strings.Join(attempts, "; "))
}
