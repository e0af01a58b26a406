// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// dsnSchemes lists the URL schemes accepted for each network driver.
var dsnSchemes = map[string][]string{
	DriverLibSQL:   {"libsql", "http", "https", "ws", "wss", "file"},
	DriverPostgres: {"postgres", "postgresql"},
}

// validateDSNURL validates URL-shaped DSNs for drivers that connect over the network.
// Postgres keyword/value DSNs ("host=... user=...") are accepted as-is.
func validateDSNURL(driver, rawDSN string) error {
	schemes, ok := dsnSchemes[driver]
	if !ok {
		return nil
	}
	if driver == DriverPostgres && !strings.Contains(rawDSN, "://") {
		return nil
	}

	parsedURL, err := url.Parse(rawDSN)
	if err != nil {
		return fmt.Errorf("DB_DSN failed to parse URL: %w", err)
	}

	for _, s := range schemes {
		if parsedURL.Scheme == s {
			if parsedURL.Scheme != "file" && parsedURL.Host == "" {
				return fmt.Errorf("DB_DSN host is required")
			}
			return nil
		}
	}
	return fmt.Errorf("DB_DSN scheme must be one of %s for driver %s, got: %s",
		strings.Join(schemes, ", "), driver, parsedURL.Scheme)
}
