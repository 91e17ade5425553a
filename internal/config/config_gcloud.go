//go:build gcloud

package config

import (
	"errors"
	"fmt"
)

// Validate requires the full Cloud Tasks queue coordinates; the gcloud build
// has no fallback notifier.
func (c *NotifierConfig) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"GCLOUD_PROJECT_ID", c.GCloudProjectID},
		{"GCLOUD_LOCATION_ID", c.GCloudLocationID},
		{"GCLOUD_QUEUE_ID", c.GCloudQueueID},
		{"GCLOUD_TARGET_URL", c.GCloudTargetURL},
	}

	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notifier configuration errors: %w", errors.Join(errs...))
	}
	return nil
}
