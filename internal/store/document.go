// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wikimark/internal/models"
)

// DocumentStore handles all document-related database operations.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a new DocumentStore with the given database connection.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// List returns all documents ordered by most recently updated.
func (s *DocumentStore) List() ([]models.Document, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, body, created_at, updated_at
		FROM documents
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Slug, &d.Body, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// FindBySlug retrieves a document by its slug. Returns nil if not found.
func (s *DocumentStore) FindBySlug(slug string) (*models.Document, error) {
	d := &models.Document{}
	err := s.db.QueryRow(`
		SELECT id, title, slug, body, created_at, updated_at
		FROM documents
		WHERE slug = $1
	`, slug).Scan(&d.ID, &d.Title, &d.Slug, &d.Body, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by slug: %w", err)
	}
	return d, nil
}

// Upsert creates a document under the given slug or replaces the title and
// body of an existing one. It returns the stored document.
func (s *DocumentStore) Upsert(slug, title, body string) (*models.Document, error) {
	now := time.Now().UTC()
	d := &models.Document{}
	err := s.db.QueryRow(`
		INSERT INTO documents (id, title, slug, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (slug) DO UPDATE
		SET title = EXCLUDED.title, body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
		RETURNING id, title, slug, body, created_at, updated_at
	`, uuid.New(), title, slug, body, now).Scan(
		&d.ID, &d.Title, &d.Slug, &d.Body, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert document: %w", err)
	}
	return d, nil
}

// Delete removes a document by slug. Deleting a missing slug is not an error.
func (s *DocumentStore) Delete(slug string) error {
	if _, err := s.db.Exec(`DELETE FROM documents WHERE slug = $1`, slug); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
