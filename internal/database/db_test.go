package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "with password",
			cfg:  Config{User: "app", Password: "s3cret", Host: "db", Port: "3306", Name: "mechanics"},
			want: "app:s3cret@tcp(db:3306)/mechanics?charset=utf8mb4&parseTime=true&loc=UTC",
		},
		{
			name: "empty password omits the colon",
			cfg:  Config{User: "app", Host: "localhost", Port: "3307", Name: "mechanics"},
			want: "app@tcp(localhost:3307)/mechanics?charset=utf8mb4&parseTime=true&loc=UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.dsn())
		})
	}
}
