//go:build !gcloud

package config

// Validate accepts an empty push gateway URL; scheduling is then disabled.
func (c *NotifierConfig) Validate() error {
	return nil
}
