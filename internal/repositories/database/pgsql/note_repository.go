package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
)

type PgxNoteRepository struct {
	BaseRepository
}

// newPgxNoteRepository creates a new repository for debit/credit note data.
func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NoteRepositoryFacade = (*PgxNoteRepository)(nil)

const noteColumns = `note_id, note_type, note_no, date, party_type, party_id, amount, related_invoice_no, created_at, created_by, last_updated_at, last_updated_by`

func scanNote(row pgx.Row) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.NoteID,
		&n.NoteType,
		&n.NoteNo,
		&n.Date,
		&n.PartyType,
		&n.PartyID,
		&n.Amount,
		&n.RelatedInvoiceNo,
		&n.CreatedAt,
		&n.CreatedBy,
		&n.LastUpdatedAt,
		&n.LastUpdatedBy,
	)
	return n, err
}

// SaveNote persists a new note.
func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
		INSERT INTO notes (note_id, note_type, note_no, date, party_type, party_id, amount, related_invoice_no, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		note.NoteID,
		note.NoteType,
		note.NoteNo,
		note.Date,
		note.PartyType,
		note.PartyID,
		note.Amount,
		note.RelatedInvoiceNo,
		note.CreatedAt,
		note.CreatedBy,
		note.LastUpdatedAt,
		note.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save note %s: %w", note.NoteID, err)
	}
	return nil
}

// FindNoteByID retrieves a note by its ID.
func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE note_id = $1;
	`
	note, err := scanNote(r.Pool.QueryRow(ctx, query, noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by id %s: %w", noteID, err)
	}
	return &note, nil
}

// ListNotesByParty retrieves all notes recorded against a party.
func (r *PgxNoteRepository) ListNotesByParty(ctx context.Context, partyID string) ([]domain.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE party_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for party %s: %w", partyID, err)
	}
	defer rows.Close()

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}
	return notes, nil
}
