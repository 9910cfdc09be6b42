package postgre

import (
	"strings"
	"testing"

	"logistic-api/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "logistic"})
	for _, want := range []string{"host=db", "port=5432", "dbname=logistic", "sslmode=disable", "timezone=UTC"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN() = %q, missing %q", dsn, want)
		}
	}
}
