package config

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// PostgresDSN returns DB_URL ready for lib/pq and golang-migrate. Poolers in
// transaction mode reject binary results for prepared statements, so the
// driver flag is added unless the URL already sets it.
func (c Config) PostgresDSN() string {
	dsn := strings.TrimSpace(c.DBURL)
	if !c.DBDisablePreparedBinary || dsn == "" {
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return dsn
	}
	query := parsed.Query()
	if query.Has(preparedBinaryParam) {
		return dsn
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DatabaseName extracts the database name from either a URL or a key=value DSN.
func (c Config) DatabaseName() string {
	dsn := strings.TrimSpace(c.DBURL)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, `"'`); name != "" {
			return name
		}
	}
	return ""
}
