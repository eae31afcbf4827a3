package jobs

import (
	"context"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/logger"
)

// MarkOverdueContracts flags unsigned contracts whose due date has passed
// and mails each affected client an overdue notice. Signed and rejected
// contracts keep their terminal signature status.
func (jr *JobRunner) MarkOverdueContracts() {
	jr.runWithRecovery("MarkOverdueContracts", func() {
		ctx := context.Background()

		query := `
			UPDATE contracts
			SET signature_status = 'EXPIRADO',
			    updated_at = NOW()
			WHERE due_date < $1
			  AND (signature_status IS NULL OR signature_status = 'PENDENTE')
			RETURNING id, client_id, COALESCE(number, ''), due_date::text, value
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to mark overdue contracts", "error", err)
			return
		}
		defer rows.Close()

		type overdueContract struct {
			ID       int32
			ClientID int32
			Number   string
			DueDate  string
			Value    float64
		}
		var overdue []overdueContract

		for rows.Next() {
			var c overdueContract
			if err := rows.Scan(&c.ID, &c.ClientID, &c.Number, &c.DueDate, &c.Value); err != nil {
				logger.Error("Failed to scan overdue contract", "error", err)
				continue
			}
			logger.Debug("Marked contract as overdue", "contract_id", c.ID, "client_id", c.ClientID, "due_date", c.DueDate)
			overdue = append(overdue, c)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue contracts", "error", err)
			return
		}

		sent := 0
		for _, c := range overdue {
			name, email, err := jr.lookupClientContact(ctx, c.ClientID)
			if err != nil || email == "" {
				logger.Debug("No email on record for client", "client_id", c.ClientID)
				continue
			}
			if err := jr.services.Email.SendOverdueNotice(ctx, email, name, c.Number, c.DueDate, c.Value); err != nil {
				logger.Error("Failed to send overdue notice", "contract_id", c.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Marked contracts as overdue", "count", len(overdue), "notices_sent", sent)
	})
}

// ExpireStaleSignatures times out signing windows left pending too long.
func (jr *JobRunner) ExpireStaleSignatures() {
	jr.runWithRecovery("ExpireStaleSignatures", func() {
		ctx := context.Background()

		n, err := jr.services.Signature.ExpireStaleSignatures(ctx)
		if err != nil {
			logger.Error("Failed to expire stale signatures", "error", err)
			return
		}
		logger.Info("Expired stale signatures", "count", n)
	})
}

// SendDueSoonReminders emails clients whose contracts fall due within the
// expiring-soon window.
func (jr *JobRunner) SendDueSoonReminders() {
	jr.runWithRecovery("SendDueSoonReminders", func() {
		ctx := context.Background()

		contracts, err := jr.services.Contract.ListContractsDueWithin(ctx, 7)
		if err != nil {
			logger.Error("Failed to list contracts due soon", "error", err)
			return
		}

		sent := 0
		for i := range contracts {
			c := &contracts[i]
			if domain.IsSigned(c) {
				continue
			}

			_, email, err := jr.lookupClientContact(ctx, c.ClientID)
			if err != nil || email == "" {
				logger.Debug("No email on record for client", "client_id", c.ClientID)
				continue
			}

			err = jr.services.Email.SendDueSoonReminder(ctx, email, domain.ResolveClientName(c), c.Number, c.DueDate, domain.EffectiveValue(c))
			if err != nil {
				logger.Error("Failed to send due soon reminder", "contract_id", c.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent due soon reminders", "count", sent, "candidates", len(contracts))
	})
}

func (jr *JobRunner) lookupClientContact(ctx context.Context, clientID int32) (name, email string, err error) {
	err = jr.db.QueryRowContext(ctx, `SELECT name, COALESCE(email, '') FROM clients WHERE id = $1`, clientID).Scan(&name, &email)
	return name, email, err
}
