package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var member Member
	if err := d.db.GetContext(ctx, &member, "SELECT * FROM members WHERE id = $1", memberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

func (d *Database) GetMemberByUserID(ctx context.Context, userID string) (*Member, error) {
	var member Member
	if err := d.db.GetContext(ctx, &member, "SELECT * FROM members WHERE user_id = $1", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member by user ID: %w", err)
	}

	return &member, nil
}

func (d *Database) GetMembers(ctx context.Context) ([]Member, error) {
	query := `
		SELECT * FROM members
		ORDER BY last_name, first_name, id
	`

	var members []Member
	if err := d.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	return members, nil
}

func (d *Database) InsertMember(ctx context.Context, member Member) error {
	query := `
		INSERT INTO members (id, user_id, first_name, last_name, email, phone, school, level_of_study, dob, age, shirt_size, github_url, linkedin_url, website_url, resume_url, points, joined_at)
		VALUES (:id, :user_id, :first_name, :last_name, :email, :phone, :school, :level_of_study, :dob, :age, :shirt_size, :github_url, :linkedin_url, :website_url, :resume_url, :points, now())
	`

	if _, err := d.db.NamedExecContext(ctx, query, member); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

func (d *Database) UpdateMember(ctx context.Context, member Member) error {
	query := `
		UPDATE members SET
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			phone = :phone,
			school = :school,
			level_of_study = :level_of_study,
			dob = :dob,
			age = :age,
			shirt_size = :shirt_size,
			github_url = :github_url,
			linkedin_url = :linkedin_url,
			website_url = :website_url,
			resume_url = :resume_url
		WHERE id = :id
	`

	if _, err := d.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return nil
}

func (d *Database) DeleteMember(ctx context.Context, memberID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM members WHERE id = $1", memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// AddMemberPoints applies a single arithmetic update so concurrent check-ins
// for the same member never lose an increment.
func (d *Database) AddMemberPoints(ctx context.Context, memberID string, points int) error {
	if _, err := d.db.ExecContext(ctx, "UPDATE members SET points = points + $2 WHERE id = $1", memberID, points); err != nil {
		return fmt.Errorf("failed to add member points: %w", err)
	}

	return nil
}
