package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	// user_id has no foreign key: identities are resolved by an external
	// auth system and stored here as opaque UUIDs.
	`CREATE TABLE IF NOT EXISTS collections (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		icon VARCHAR(100),
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		collection_id UUID REFERENCES collections(id) ON DELETE SET NULL,
		user_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		model_hint VARCHAR(100),
		prompt_body TEXT NOT NULL,
		tags JSONB NOT NULL DEFAULT '[]',
		is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
		is_system BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// Variables carry no updated_at: edits to them are not timestamped.
	`CREATE TABLE IF NOT EXISTS template_variables (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		template_id UUID NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		label VARCHAR(255),
		description TEXT,
		input_type VARCHAR(50),
		default_value TEXT,
		options JSONB,
		order_index INTEGER,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_collections_user_id ON collections(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_user_id ON templates(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_collection_id ON templates(collection_id)`,
	`CREATE INDEX IF NOT EXISTS idx_template_variables_template_id ON template_variables(template_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
