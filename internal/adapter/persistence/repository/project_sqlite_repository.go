package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// ProjectSQLiteRepository persists Project records in the local SQLite file.
type ProjectSQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IProjectRepository = (*ProjectSQLiteRepository)(nil)

func NewProjectSQLiteRepository(db *sql.DB) *ProjectSQLiteRepository {
	return &ProjectSQLiteRepository{db: db, now: time.Now}
}

const projectSelect = `SELECT project_id, customer_request, extracted_details, quote_draft, final_quote,
       email_draft, availability_info, status, error_details, created_at, updated_at
FROM projects WHERE project_id = ?`

func (r *ProjectSQLiteRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	c, err := toProjectColumns(p)
	if err != nil {
		return entities.Project{}, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO projects
        (project_id, customer_request, extracted_details, quote_draft, final_quote,
         email_draft, availability_info, status, error_details, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ProjectID, c.CustomerRequest,
		nullable(c.ExtractedDetails), nullable(c.QuoteDraft), nullable(c.FinalQuote),
		nullable(c.EmailDraft), nullable(c.AvailabilityInfo),
		c.Status, nullable(c.ErrorDetails), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return scanProject(r.db.QueryRowContext(ctx, projectSelect, id))
}

// Update writes the named fields in one statement and returns the merged row.
func (r *ProjectSQLiteRepository) Update(ctx context.Context, id string, u entities.ProjectUpdate) (entities.Project, error) {
	cols, err := updateColumns(u, r.now())
	if err != nil {
		return entities.Project{}, err
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c[0]+" = ?")
		args = append(args, c[1])
	}
	args = append(args, id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Project{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE project_id = ?", args...)
	if err != nil {
		return entities.Project{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Project{}, err
	}
	if n == 0 {
		return entities.Project{}, nil
	}

	p, err := scanProject(tx.QueryRowContext(ctx, projectSelect, id))
	if err != nil {
		return entities.Project{}, err
	}
	return p, tx.Commit()
}

func scanProject(row *sql.Row) (entities.Project, error) {
	var (
		c                                             projectColumns
		details, quote, final, email, avail, errorMsg sql.NullString
	)
	err := row.Scan(&c.ProjectID, &c.CustomerRequest, &details, &quote, &final,
		&email, &avail, &c.Status, &errorMsg, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	c.ExtractedDetails = details.String
	c.QuoteDraft = quote.String
	c.FinalQuote = final.String
	c.EmailDraft = email.String
	c.AvailabilityInfo = avail.String
	c.ErrorDetails = errorMsg.String
	return fromProjectColumns(c)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
