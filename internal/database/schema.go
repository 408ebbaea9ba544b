package database

import (
	"context"
	"database/sql"
)

// Schema statements, applied in order at startup. UUID string primary
// keys; specialties and images columns hold JSON-encoded text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          VARCHAR(36)  NOT NULL,
		username    VARCHAR(50)  NOT NULL,
		email       VARCHAR(100) NOT NULL,
		password    VARCHAR(255) NOT NULL,
		full_name   VARCHAR(100) NULL,
		created_at  DATETIME     NOT NULL,
		updated_at  DATETIME     NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS mechanics (
		id              VARCHAR(36)  NOT NULL,
		name            VARCHAR(100) NOT NULL,
		address         VARCHAR(255) NOT NULL,
		city            VARCHAR(50)  NOT NULL,
		state           VARCHAR(50)  NOT NULL,
		zip_code        VARCHAR(20)  NOT NULL,
		phone           VARCHAR(20)  NOT NULL,
		email           VARCHAR(100) NULL,
		website         VARCHAR(255) NULL,
		specialties     TEXT         NOT NULL,
		operating_hours TEXT         NULL,
		created_at      DATETIME     NOT NULL,
		updated_at      DATETIME     NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id              VARCHAR(36)  NOT NULL,
		user_id         VARCHAR(36)  NOT NULL,
		mechanic_id     VARCHAR(36)  NOT NULL,
		rating          INT          NOT NULL,
		comment         TEXT         NOT NULL,
		service_type    VARCHAR(100) NULL,
		service_date    VARCHAR(50)  NULL,
		price_paid      DOUBLE       NULL,
		price_rating    INT          NULL,
		quality_rating  INT          NULL,
		service_rating  INT          NULL,
		images          TEXT         NULL,
		created_at      DATETIME     NOT NULL,
		updated_at      DATETIME     NOT NULL,
		PRIMARY KEY (id),
		KEY idx_reviews_mechanic (mechanic_id),
		KEY idx_reviews_user (user_id),
		CONSTRAINT fk_reviews_user     FOREIGN KEY (user_id)     REFERENCES users (id),
		CONSTRAINT fk_reviews_mechanic FOREIGN KEY (mechanic_id) REFERENCES mechanics (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the three application tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
