package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrTooManyRows  = errors.New("too many rows in result set")
	ErrQueryRow     = errors.New("could not execute query")
	ErrStoreFailed  = errors.New("could not store data")
	ErrNoID         = errors.New("data contains no id")
	ErrAlreadyExist = errors.New("already exists")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS devices (
			device_id	TEXT NOT NULL,
			name		TEXT NOT NULL,
			type		TEXT NOT NULL DEFAULT 'inverter',
			location	TEXT NOT NULL DEFAULT '',
			active		BOOLEAN NOT NULL DEFAULT TRUE,
			last_seen	TIMESTAMPTZ,
			created_at	TIMESTAMPTZ NOT NULL DEFAULT NOW(),

			PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS power_readings (
			ts				TIMESTAMPTZ NOT NULL,
			device_id		TEXT NOT NULL,
			voltage			DOUBLE PRECISION NOT NULL,
			current			DOUBLE PRECISION NOT NULL,
			power			DOUBLE PRECISION NOT NULL,
			frequency		DOUBLE PRECISION NOT NULL,
			power_factor	DOUBLE PRECISION NOT NULL,
			battery_voltage	DOUBLE PRECISION,
			battery_soc		DOUBLE PRECISION
		);

		CREATE INDEX IF NOT EXISTS power_readings_device_ts_idx ON power_readings (device_id, ts DESC);

		CREATE TABLE IF NOT EXISTS battery_readings (
			ts			TIMESTAMPTZ NOT NULL,
			device_id	TEXT NOT NULL,
			voltage		DOUBLE PRECISION NOT NULL,
			soc			DOUBLE PRECISION NOT NULL,
			charging	BOOLEAN NOT NULL DEFAULT FALSE,
			temperature	DOUBLE PRECISION
		);

		CREATE INDEX IF NOT EXISTS battery_readings_device_ts_idx ON battery_readings (device_id, ts DESC);

		CREATE TABLE IF NOT EXISTS daily_consumption (
			device_id			TEXT NOT NULL,
			date				DATE NOT NULL,
			total_consumption	DOUBLE PRECISION NOT NULL,
			avg_power			DOUBLE PRECISION NOT NULL,
			peak_power			DOUBLE PRECISION NOT NULL,
			min_power			DOUBLE PRECISION NOT NULL,
			total_cost			DOUBLE PRECISION NOT NULL,

			UNIQUE (device_id, date)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id	TEXT NOT NULL,
			device_id	TEXT NOT NULL,
			alert_type	TEXT NOT NULL,
			message		TEXT NOT NULL,
			value		DOUBLE PRECISION,
			severity	TEXT NOT NULL,
			status		TEXT NOT NULL DEFAULT 'ACTIVE',
			observed_at	TIMESTAMPTZ NOT NULL,
			resolved_at	TIMESTAMPTZ,

			PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS clients (
			client_id			TEXT NOT NULL,
			name				TEXT NOT NULL,
			email				TEXT NOT NULL DEFAULT '',
			phone				TEXT NOT NULL DEFAULT '',
			whatsapp_number		TEXT NOT NULL DEFAULT '',
			address				TEXT NOT NULL DEFAULT '',
			active				BOOLEAN NOT NULL DEFAULT TRUE,
			whatsapp_alerts		BOOLEAN NOT NULL DEFAULT TRUE,
			email_reports		BOOLEAN NOT NULL DEFAULT TRUE,
			report_frequency	TEXT NOT NULL DEFAULT 'WEEKLY',
			created_at			TIMESTAMPTZ NOT NULL DEFAULT NOW(),

			PRIMARY KEY (client_id)
		);

		CREATE TABLE IF NOT EXISTS client_devices (
			client_id	TEXT NOT NULL,
			device_id	TEXT NOT NULL,

			PRIMARY KEY (client_id, device_id)
		);

		CREATE TABLE IF NOT EXISTS tariffs (
			tariff_id		TEXT NOT NULL,
			name			TEXT NOT NULL,
			rate_per_kwh	DOUBLE PRECISION NOT NULL,
			currency		TEXT NOT NULL DEFAULT 'NGN',
			tod_start		TEXT,
			tod_end			TEXT,
			active			BOOLEAN NOT NULL DEFAULT TRUE,

			PRIMARY KEY (tariff_id)
		);

		CREATE TABLE IF NOT EXISTS energy_reports (
			report_id				TEXT NOT NULL,
			client_id				TEXT NOT NULL,
			device_id				TEXT NOT NULL DEFAULT '',
			report_type				TEXT NOT NULL,
			start_date				DATE NOT NULL,
			end_date				DATE NOT NULL,
			total_consumption		DOUBLE PRECISION NOT NULL,
			total_cost				DOUBLE PRECISION NOT NULL,
			avg_daily_consumption	DOUBLE PRECISION NOT NULL,
			peak_power				DOUBLE PRECISION NOT NULL,
			avg_power_factor		DOUBLE PRECISION NOT NULL,
			uptime_hours			DOUBLE PRECISION NOT NULL,
			total_alerts			INTEGER NOT NULL DEFAULT 0,
			critical_alerts			INTEGER NOT NULL DEFAULT 0,
			currency				TEXT NOT NULL DEFAULT 'NGN',
			breakdown				JSONB NOT NULL DEFAULT '[]',
			generated_at			TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			sent_via_email			BOOLEAN NOT NULL DEFAULT FALSE,
			sent_via_whatsapp		BOOLEAN NOT NULL DEFAULT FALSE,

			PRIMARY KEY (report_id)
		);

		CREATE TABLE IF NOT EXISTS notification_records (
			notification_id	TEXT NOT NULL,
			recipient		TEXT NOT NULL,
			body			TEXT NOT NULL,
			channel			TEXT NOT NULL,
			message_type	TEXT NOT NULL DEFAULT 'alert',
			status			TEXT NOT NULL DEFAULT 'PENDING',
			alert_id		TEXT NOT NULL DEFAULT '',
			client_id		TEXT NOT NULL DEFAULT '',
			report_id		TEXT NOT NULL DEFAULT '',
			response		JSONB,
			created_at		TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			sent_at			TIMESTAMPTZ,

			PRIMARY KEY (notification_id)
		);
	`)
	if err != nil {
		return err
	}

	return nil
}
