package database

import (
	"context"
	"fmt"
)

func (d *Database) InsertDuesPayment(ctx context.Context, payment DuesPayment) error {
	query := `
		INSERT INTO dues_payments (id, member_id, amount, payment_date, year)
		VALUES (:id, :member_id, :amount, :payment_date, :year)
	`

	if _, err := d.db.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to insert dues payment: %w", err)
	}

	return nil
}

func (d *Database) DeleteDuesPayments(ctx context.Context, memberID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM dues_payments WHERE member_id = $1", memberID); err != nil {
		return fmt.Errorf("failed to delete dues payments: %w", err)
	}

	return nil
}

func (d *Database) DeleteAllDuesPayments(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM dues_payments"); err != nil {
		return fmt.Errorf("failed to delete all dues payments: %w", err)
	}

	return nil
}

// GetDuesPayingMembers returns every member with at least one dues payment on
// record. Dues-paying status is never stored, only derived.
func (d *Database) GetDuesPayingMembers(ctx context.Context) ([]Member, error) {
	query := `
		SELECT * FROM members m
		WHERE EXISTS (
			SELECT 1 FROM dues_payments dp
			WHERE dp.member_id = m.id
		)
		ORDER BY m.last_name, m.first_name, m.id
	`

	var members []Member
	if err := d.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("failed to get dues paying members: %w", err)
	}

	return members, nil
}
