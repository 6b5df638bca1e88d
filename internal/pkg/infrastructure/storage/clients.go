package storage

import (
	"context"
	"errors"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddClient(ctx context.Context, client types.Client) error {
	if client.ID == "" {
		return ErrNoID
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO clients (client_id, name, email, phone, whatsapp_number, address, active, whatsapp_alerts, email_reports, report_frequency)
		VALUES (@client_id, @name, @email, @phone, @whatsapp_number, @address, @active, @whatsapp_alerts, @email_reports, @report_frequency)
		ON CONFLICT (client_id) DO NOTHING
	`, pgx.NamedArgs{
		"client_id":        client.ID,
		"name":             client.Name,
		"email":            client.Email,
		"phone":            client.Phone,
		"whatsapp_number":  client.WhatsAppNumber,
		"address":          client.Address,
		"active":           client.Active,
		"whatsapp_alerts":  client.WhatsAppAlerts,
		"email_reports":    client.EmailReports,
		"report_frequency": string(client.ReportFrequency),
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyExist
	}

	return nil
}

func (s *Storage) GetClient(ctx context.Context, conditions ...ConditionFunc) (types.Client, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var client types.Client

	err := s.pool.QueryRow(ctx, `
		SELECT client_id, name, email, phone, whatsapp_number, address, active, whatsapp_alerts, email_reports, report_frequency, created_at
		FROM clients
		`+condition.Where(), condition.NamedArgs()).
		Scan(&client.ID, &client.Name, &client.Email, &client.Phone, &client.WhatsAppNumber, &client.Address,
			&client.Active, &client.WhatsAppAlerts, &client.EmailReports, &client.ReportFrequency, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Client{}, ErrNoRows
		}
		return types.Client{}, err
	}

	return client, nil
}

func (s *Storage) QueryClients(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Client], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "name"
	}
	condition.timeColumn = "created_at"

	query := `
		SELECT client_id, name, email, phone, whatsapp_number, address, active, whatsapp_alerts, email_reports, report_frequency, created_at, count(*) OVER () AS total
		FROM clients
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Client]{}, err
	}

	var client types.Client
	var total int64

	clients := make([]types.Client, 0)

	_, err = pgx.ForEachRow(rows, []any{&client.ID, &client.Name, &client.Email, &client.Phone, &client.WhatsAppNumber, &client.Address,
		&client.Active, &client.WhatsAppAlerts, &client.EmailReports, &client.ReportFrequency, &client.CreatedAt, &total}, func() error {
		clients = append(clients, client)
		return nil
	})
	if err != nil {
		return types.Collection[types.Client]{}, err
	}

	return types.Collection[types.Client]{
		Data:       clients,
		Count:      uint64(len(clients)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) AttachDevice(ctx context.Context, clientID, deviceID string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO client_devices (client_id, device_id)
		VALUES (@client_id, @device_id)
		ON CONFLICT (client_id, device_id) DO NOTHING
	`, pgx.NamedArgs{
		"client_id": clientID,
		"device_id": deviceID,
	})
	return err
}

func (s *Storage) DetachDevice(ctx context.Context, clientID, deviceID string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM client_devices
		WHERE client_id = @client_id AND device_id = @device_id
	`, pgx.NamedArgs{
		"client_id": clientID,
		"device_id": deviceID,
	})
	return err
}

func (s *Storage) GetClientDevices(ctx context.Context, clientID string) ([]types.Device, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT d.device_id, d.name, d.type, d.location, d.active, COALESCE(d.last_seen, 'epoch'::timestamptz), d.created_at
		FROM devices d
		JOIN client_devices cd ON cd.device_id = d.device_id
		WHERE cd.client_id = @client_id
		ORDER BY d.device_id
	`, pgx.NamedArgs{"client_id": clientID})
	if err != nil {
		return nil, err
	}

	var device types.Device

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{&device.DeviceID, &device.Name, &device.Type, &device.Location, &device.Active, &device.LastSeen, &device.CreatedAt}, func() error {
		devices = append(devices, device)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}

// GetSubscribedClients returns the active clients attached to a device that
// opted in to WhatsApp alerts.
func (s *Storage) GetSubscribedClients(ctx context.Context, deviceID string) ([]types.Client, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.client_id, c.name, c.email, c.phone, c.whatsapp_number, c.address, c.active, c.whatsapp_alerts, c.email_reports, c.report_frequency, c.created_at
		FROM clients c
		JOIN client_devices cd ON cd.client_id = c.client_id
		WHERE cd.device_id = @device_id AND c.active = TRUE AND c.whatsapp_alerts = TRUE
		ORDER BY c.client_id
	`, pgx.NamedArgs{"device_id": deviceID})
	if err != nil {
		return nil, err
	}

	var client types.Client

	clients := make([]types.Client, 0)

	_, err = pgx.ForEachRow(rows, []any{&client.ID, &client.Name, &client.Email, &client.Phone, &client.WhatsAppNumber, &client.Address,
		&client.Active, &client.WhatsAppAlerts, &client.EmailReports, &client.ReportFrequency, &client.CreatedAt}, func() error {
		clients = append(clients, client)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return clients, nil
}
