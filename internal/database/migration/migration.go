package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Back-reference arrays (clients.patients, patients.*_history,
// suppliers.supply_history) and embedded lists are JSONB so a single UPDATE
// can push/pull ids atomically per document.
var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner      TEXT        NOT NULL,
  address    TEXT        NOT NULL,
  contact    TEXT        NOT NULL,
  email      TEXT        NOT NULL DEFAULT '',
  patients   JSONB       NOT NULL DEFAULT '[]',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_patients",
		SQL: `CREATE TABLE IF NOT EXISTS patients (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name                TEXT        NOT NULL,
  species             TEXT        NOT NULL,
  breed               TEXT        NOT NULL DEFAULT '',
  age                 TEXT        NOT NULL,
  sex                 TEXT        NOT NULL DEFAULT 'UNKNOWN',
  pet_id              TEXT        NOT NULL UNIQUE,
  registration_number TEXT        NOT NULL UNIQUE,
  client              UUID        NOT NULL,
  last_appointment    TIMESTAMPTZ,
  next_appointment    TIMESTAMPTZ,
  medical_history     JSONB       NOT NULL DEFAULT '[]',
  vaccination_history JSONB       NOT NULL DEFAULT '[]',
  blood_reports       JSONB       NOT NULL DEFAULT '[]',
  surgery_history     JSONB       NOT NULL DEFAULT '[]',
  attachments         JSONB       NOT NULL DEFAULT '[]',
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_patients_client",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_patients_client ON patients (client);`,
	},
	{
		Name: "create_index_patients_name_client",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_patients_name_client ON patients (name, client);`,
	},
	{
		Name: "create_table_medical_records",
		SQL: `CREATE TABLE IF NOT EXISTS medical_records (
  id                       UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  patient                  UUID             NOT NULL,
  veterinarian             TEXT             NOT NULL,
  weight                   DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
  pulse_rate               TEXT             NOT NULL,
  conclusion               TEXT             NOT NULL,
  reason                   TEXT             NOT NULL DEFAULT '',
  prognosis                TEXT             NOT NULL DEFAULT '',
  advice                   TEXT             NOT NULL DEFAULT '',
  notes                    TEXT             NOT NULL DEFAULT '',
  examination              JSONB            NOT NULL DEFAULT '[]',
  previous_history         JSONB            NOT NULL DEFAULT '[]',
  treatment_plan           JSONB            NOT NULL DEFAULT '[]',
  clinical_signs           JSONB            NOT NULL DEFAULT '[]',
  diagnosis                JSONB            NOT NULL DEFAULT '[]',
  treatment                JSONB            NOT NULL DEFAULT '[]',
  clinical_finding         JSONB            NOT NULL DEFAULT '[]',
  medications              JSONB            NOT NULL DEFAULT '[]',
  treatment_completed      BOOLEAN          NOT NULL DEFAULT FALSE,
  vaccination_status       JSONB,
  clinical_examination     JSONB,
  consent_forms            JSONB            NOT NULL DEFAULT '[]',
  medical_report_files     JSONB            NOT NULL DEFAULT '[]',
  surgery_report_files     JSONB            NOT NULL DEFAULT '[]',
  vaccination_report_files JSONB            NOT NULL DEFAULT '[]',
  date                     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  follow_up_date           TIMESTAMPTZ,
  created_at               TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at               TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_medical_records_patient_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_medical_records_patient_date ON medical_records (patient, date DESC);`,
	},
	{
		Name: "create_table_vaccinations",
		SQL: `CREATE TABLE IF NOT EXISTS vaccinations (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  patient_name      TEXT        NOT NULL DEFAULT '',
  patient_species   TEXT        NOT NULL DEFAULT '',
  patient_breed     TEXT        NOT NULL DEFAULT '',
  patient_age       TEXT        NOT NULL DEFAULT '',
  patient_id        TEXT        NOT NULL DEFAULT '',
  owner_name        TEXT        NOT NULL DEFAULT '',
  owner_phone       TEXT        NOT NULL DEFAULT '',
  vaccine_name      TEXT        NOT NULL DEFAULT '',
  date_administered TIMESTAMPTZ,
  next_due_date     TIMESTAMPTZ,
  batch_number      TEXT        NOT NULL DEFAULT '',
  manufacturer      TEXT        NOT NULL DEFAULT '',
  notes             TEXT        NOT NULL DEFAULT '',
  status            TEXT        NOT NULL DEFAULT 'upcoming',
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_blood_reports",
		SQL: `CREATE TABLE IF NOT EXISTS blood_reports (
  id                    UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  patient               UUID        NOT NULL,
  veterinarian          TEXT        NOT NULL,
  sample_collected_date TIMESTAMPTZ NOT NULL,
  sample_tested_date    TIMESTAMPTZ NOT NULL,
  hematology            JSONB,
  clinical_chemistry    JSONB,
  notes                 TEXT        NOT NULL DEFAULT '',
  created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_blood_reports_patient",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_blood_reports_patient ON blood_reports (patient, created_at DESC);`,
	},
	{
		Name: "create_table_surgeries",
		SQL: `CREATE TABLE IF NOT EXISTS surgeries (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  patient         UUID        NOT NULL,
  surgery_type    TEXT        NOT NULL,
  surgery_date    TIMESTAMPTZ NOT NULL,
  veterinarian    TEXT        NOT NULL,
  anesthesia_type TEXT        NOT NULL DEFAULT '',
  duration        INTEGER     NOT NULL DEFAULT 0,
  complications   TEXT        NOT NULL DEFAULT '',
  notes           TEXT        NOT NULL DEFAULT '',
  follow_up_date  TIMESTAMPTZ,
  medications     JSONB       NOT NULL DEFAULT '[]',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_surgeries_patient_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_surgeries_patient_date ON surgeries (patient, surgery_date DESC);`,
	},
	{
		Name: "create_table_suppliers",
		SQL: `CREATE TABLE IF NOT EXISTS suppliers (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name           TEXT        NOT NULL UNIQUE,
  company        TEXT        NOT NULL DEFAULT '',
  pan            TEXT        NOT NULL DEFAULT '',
  phone          TEXT        NOT NULL DEFAULT '',
  email          TEXT        NOT NULL DEFAULT '',
  address        TEXT        NOT NULL DEFAULT '',
  supply_history JSONB       NOT NULL DEFAULT '[]',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_inventory_items",
		SQL: `CREATE TABLE IF NOT EXISTS inventory_items (
  id            UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT             NOT NULL,
  type          TEXT             NOT NULL,
  unit_name     TEXT             NOT NULL,
  location      TEXT             NOT NULL DEFAULT '',
  quantity      DOUBLE PRECISION NOT NULL CHECK (quantity >= 0),
  price         DOUBLE PRECISION NOT NULL CHECK (price >= 0),
  cost_price    DOUBLE PRECISION NOT NULL CHECK (cost_price >= 0),
  selling_price DOUBLE PRECISION NOT NULL CHECK (selling_price >= 0),
  manufacturer  TEXT             NOT NULL DEFAULT '',
  supplier      UUID             NOT NULL,
  batch_number  TEXT             NOT NULL DEFAULT '',
  expiry_date   TIMESTAMPTZ,
  threshold     DOUBLE PRECISION NOT NULL DEFAULT 10,
  description   TEXT             NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_inventory_items_supplier",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_inventory_items_supplier ON inventory_items (supplier);`,
	},
	{
		Name: "create_table_medicines",
		SQL: `CREATE TABLE IF NOT EXISTS medicines (
  id            UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT             NOT NULL UNIQUE,
  type          TEXT             NOT NULL,
  unit_name     TEXT             NOT NULL,
  unit          DOUBLE PRECISION NOT NULL,
  cost_price    DOUBLE PRECISION NOT NULL,
  selling_price DOUBLE PRECISION NOT NULL,
  expiry_date   TIMESTAMPTZ      NOT NULL,
  supplier      TEXT             NOT NULL,
  created_at    TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_sales",
		SQL: `CREATE TABLE IF NOT EXISTS sales (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  date           TIMESTAMPTZ      NOT NULL DEFAULT now(),
  client_name    TEXT             NOT NULL,
  client_phone   TEXT             NOT NULL,
  items          JSONB            NOT NULL DEFAULT '[]',
  payment_method TEXT             NOT NULL,
  tax_rate       DOUBLE PRECISION NOT NULL,
  discount       DOUBLE PRECISION NOT NULL DEFAULT 0,
  subtotal       DOUBLE PRECISION NOT NULL,
  tax            DOUBLE PRECISION NOT NULL,
  total_amount   DOUBLE PRECISION NOT NULL,
  service_charge DOUBLE PRECISION NOT NULL DEFAULT 0,
  total_bill     DOUBLE PRECISION NOT NULL,
  notes          TEXT             NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_appointments",
		SQL: `CREATE TABLE IF NOT EXISTS appointments (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  client_id      UUID,
  client_name    TEXT        NOT NULL,
  pet_name       TEXT        NOT NULL,
  pet_type       TEXT        NOT NULL,
  pet_age        TEXT        NOT NULL,
  date           TIMESTAMPTZ NOT NULL,
  time           TEXT        NOT NULL DEFAULT '',
  reason         TEXT        NOT NULL,
  contact_number TEXT        NOT NULL,
  notes          TEXT        NOT NULL DEFAULT '',
  vet_name       TEXT        NOT NULL,
  follow_up_date TIMESTAMPTZ,
  priority       TEXT        NOT NULL DEFAULT 'Normal',
  completed      BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_staffs",
		SQL: `CREATE TABLE IF NOT EXISTS staffs (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  full_name         TEXT        NOT NULL,
  role              TEXT        NOT NULL,
  license_number    TEXT        NOT NULL DEFAULT '',
  qualifications    TEXT        NOT NULL DEFAULT '',
  phone             TEXT        NOT NULL,
  email             TEXT        NOT NULL,
  join_date         TIMESTAMPTZ NOT NULL,
  address           TEXT        NOT NULL DEFAULT '',
  emergency_contact TEXT        NOT NULL DEFAULT '',
  notes             TEXT        NOT NULL DEFAULT '',
  active            BOOLEAN     NOT NULL DEFAULT TRUE,
  user_id           TEXT        NOT NULL UNIQUE,
  password_hash     TEXT        NOT NULL,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the 'patients' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.patients') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
