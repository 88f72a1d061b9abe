// Package schema holds the DDL for the system tables.
package schema

// TableDefinitions are executed in order at startup. documents is created
// before projects and carries no foreign key on project_id: the main
// document row is inserted before its project exists and backfilled inside
// the provisioning transaction.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		session_id VARCHAR(64) PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(user_id),
		expires BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		document_id SERIAL PRIMARY KEY,
		project_id INTEGER,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id SERIAL PRIMARY KEY,
		main_document_id INTEGER NOT NULL REFERENCES documents(document_id),
		owner_id INTEGER NOT NULL REFERENCES users(user_id),
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_modified TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS resources (
		resource_id SERIAL PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(project_id),
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		token VARCHAR(64) PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(project_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sharing (
		friend_id INTEGER NOT NULL REFERENCES users(user_id),
		project_id INTEGER NOT NULL REFERENCES projects(project_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_project_id ON documents(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_resources_project_id ON resources(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sharing_friend_id ON sharing(friend_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
}

// TableNames lists the tables in creation order, used to drop them in
// reverse for cleanup.
var TableNames = []string{
	"users",
	"sessions",
	"documents",
	"projects",
	"resources",
	"tokens",
	"sharing",
}
