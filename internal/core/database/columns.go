package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// column maps a logical field name to its physical column.
type column struct {
	field string
	name  string
}

type table struct {
	name    string
	columns []column
}

// The only place physical table and column names are spelled out. Queries build
// their select and insert lists from these, and VerifySchema checks them at startup.
var (
	userTable = table{name: "user", columns: []column{
		{"id", "id"},
		{"email", "email"},
		{"password", "password"},
	}}

	chatTable = table{name: "chat", columns: []column{
		{"id", "id"},
		{"createdAt", "createdat"},
		{"title", "title"},
		{"userId", "userid"},
		{"visibility", "visibility"},
		{"lastContext", "lastcontext"},
	}}

	messageTable = table{name: "message_v2", columns: []column{
		{"id", "id"},
		{"chatId", "chatid"},
		{"role", "role"},
		{"parts", "parts"},
		{"attachments", "attachments"},
		{"createdAt", "createdat"},
	}}

	voteTable = table{name: "vote_v2", columns: []column{
		{"chatId", "chatid"},
		{"messageId", "messageid"},
		{"isUpvoted", "isupvoted"},
	}}

	documentTable = table{name: "document", columns: []column{
		{"id", "id"},
		{"createdAt", "createdat"},
		{"title", "title"},
		{"content", "content"},
		{"kind", "text"},
		{"userId", "userid"},
	}}

	suggestionTable = table{name: "suggestion", columns: []column{
		{"id", "id"},
		{"documentId", "documentid"},
		{"documentCreatedAt", "documentcreatedat"},
		{"originalText", "originaltext"},
		{"suggestedText", "suggestedtext"},
		{"description", "description"},
		{"isResolved", "isresolved"},
		{"userId", "userid"},
		{"createdAt", "createdat"},
	}}

	streamTable = table{name: "stream", columns: []column{
		{"id", "id"},
		{"chatId", "chatid"},
		{"createdAt", "createdat"},
	}}

	healthcheckTable = table{name: "healthcheck", columns: []column{
		{"id", "id"},
		{"status", "status"},
		{"createdAt", "createdat"},
	}}

	mappedTables = []table{
		userTable, chatTable, messageTable, voteTable,
		documentTable, suggestionTable, streamTable, healthcheckTable,
	}
)

func (t table) ident() string {
	return pgx.Identifier{t.name}.Sanitize()
}

// c returns the quoted physical column for a logical field. Unknown fields panic,
// and every query is built at package init, so a bad mapping fails at startup.
func (t table) c(field string) string {
	for _, col := range t.columns {
		if col.field == field {
			return pgx.Identifier{col.name}.Sanitize()
		}
	}
	panic(fmt.Sprintf("db: table %s has no mapped field %q", t.name, field))
}

// list is every mapped column in mapping order, optionally qualified by alias.
// Scan order in the row helpers follows the same order.
func (t table) list(alias ...string) string {
	prefix := ""
	if len(alias) > 0 {
		prefix = alias[0] + "."
	}
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = prefix + pgx.Identifier{col.name}.Sanitize()
	}
	return strings.Join(parts, ", ")
}

// placeholders returns "$from, ..., $(from+n-1)" for one row of every mapped column.
func (t table) placeholders(from int) string {
	parts := make([]string, len(t.columns))
	for i := range t.columns {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// VerifySchema checks that every mapped column exists in the connected database.
func VerifySchema(ctx context.Context, db *sql.DB) error {
	const q = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
	`
	var missing []string
	for _, t := range mappedTables {
		present, err := physicalColumns(ctx, db, q, t.name)
		if err != nil {
			return fmt.Errorf("read columns of %s: %w", t.name, err)
		}
		for _, col := range t.columns {
			if !present[col.name] {
				missing = append(missing, fmt.Sprintf("%s.%s (%s)", t.name, col.name, col.field))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema is missing mapped columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func physicalColumns(ctx context.Context, db *sql.DB, q, tableName string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, q, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	return present, rows.Err()
}
