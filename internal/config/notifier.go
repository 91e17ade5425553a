package config

import (
	"os"
	"strconv"
)

const defaultNotifierMaxRetries = 3

type NotifierConfig struct {
	PushGatewayURL string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func LoadNotifierConfig() NotifierConfig {
	maxRetries := defaultNotifierMaxRetries
	if v := os.Getenv("NOTIFIER_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return NotifierConfig{
		PushGatewayURL: os.Getenv("PUSH_GATEWAY_URL"),

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

		MaxRetries: maxRetries,
	}
}
