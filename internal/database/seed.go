package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// welcomeBody exercises the whole rendering dialect so a fresh install has
// something to look at.
const welcomeBody = `# Welcome

This wiki renders a constrained markdown dialect.

## Formatting

**bold**, *italic*, ` + "`inline code`" + `, and [links](https://example.com).

**Checklist:**
- [x] install
- [ ] write pages

## Tables

| Feature | Status |
|---------|--------|
| Tables  | yes    |
| Code    | yes    |

## Code

` + "```go" + `
fmt.Println("hello")
` + "```" + `

---
> Edit this page through the document API.
`

// Seed populates the database with initial development data.
// It creates a welcome document if the wiki is empty.
func Seed(db *sql.DB) error {
	// Check if any documents exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count); err != nil {
		return fmt.Errorf("seed check documents: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO documents (id, title, slug, body)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), "Welcome", "welcome", welcomeBody)
	if err != nil {
		return fmt.Errorf("seed insert welcome document: %w", err)
	}

	slog.Info("database seeded with welcome document", "slug", "welcome")
	return nil
}
