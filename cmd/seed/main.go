// Command seed provisions the schema and loads the July 2025 demo calendar.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"schedula/config"
	"schedula/internal/booking"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	start_time   TIMESTAMPTZ NOT NULL,
	end_time     TIMESTAMPTZ NOT NULL,
	client_name  TEXT NOT NULL DEFAULT '',
	client_email TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'confirmed',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookings_start_time ON bookings (start_time);

CREATE TABLE IF NOT EXISTS chat_transcripts (
	id         UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	message    TEXT NOT NULL,
	response   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_chat_transcripts_session ON chat_transcripts (session_id);
`

type seedBooking struct {
	Title       string
	Description string
	Category    string
	Start       string // "2006-01-02 15:04"
	End         string
	ClientName  string
	ClientEmail string
}

// July 2025 demo schedule. July 12 carries two sessions on purpose, so
// multi-delete and ambiguous-update commands have something to chew on.
var july2025 = []seedBooking{
	{"Introduction to Machine Learning", "Fundamentals of ML algorithms and applications", "Training", "2025-07-01 10:00", "2025-07-01 12:00", "TechCorp Solutions", "sarah.johnson@techcorp.com"},
	{"Azure Fundamentals Workshop", "Azure basics and core services overview", "Workshop", "2025-07-02 14:00", "2025-07-02 17:00", "Global Enterprises", "mike.chen@globalent.com"},
	{"Network Security Consultation", "IT security best practices and implementation", "Consultation", "2025-07-03 09:00", "2025-07-03 11:30", "SecureNet Inc.", "anna.davis@securenet.com"},
	{"Deep Learning Strategy Meeting", "Advanced neural networks and deep learning planning", "Meeting", "2025-07-04 13:00", "2025-07-04 16:00", "DataScience Pro", "raj.patel@datasci.com"},
	{"Azure DevOps Training", "CI/CD pipelines and deployment automation", "Training", "2025-07-07 10:00", "2025-07-07 13:00", "DevOps Masters", "lisa.wong@devopsm.com"},
	{"Computer Vision Workshop", "Image processing and computer vision with ML", "Workshop", "2025-07-08 14:00", "2025-07-08 17:00", "Vision AI Labs", "carlos.rodriguez@visionai.com"},
	{"Database Management Review", "SQL and NoSQL database performance review", "Review", "2025-07-09 09:30", "2025-07-09 12:30", "Data Systems Corp", "emily.brown@datasys.com"},
	{"Azure ML Consultation", "Cloud-based ML model development consultation", "Consultation", "2025-07-10 15:00", "2025-07-10 18:00", "CloudML Innovations", "david.kim@cloudml.com"},
	{"NLP Strategy Meeting", "Natural language processing project planning", "Meeting", "2025-07-11 10:00", "2025-07-11 13:00", "TextAnalytics Inc.", "sofia.garcia@textanalytics.com"},
	{"Team Standup Meeting", "Weekly sync on project milestones", "Meeting", "2025-07-12 09:00", "2025-07-12 10:00", "TechCorp Solutions", "sarah.johnson@techcorp.com"},
	{"Azure Migration Planning", "Workload assessment and migration roadmap", "Meeting", "2025-07-12 14:00", "2025-07-12 16:00", "Global Enterprises", "mike.chen@globalent.com"},
	{"Azure Security and Compliance", "Security best practices in Azure cloud", "Training", "2025-07-14 09:00", "2025-07-14 12:00", "SecureCloud Solutions", "robert.taylor@securecloud.com"},
	{"Cloud Infrastructure Management", "Managing and monitoring cloud resources", "Consultation", "2025-07-15 14:00", "2025-07-15 17:00", "InfraManage Pro", "jennifer.lee@inframanage.com"},
	{"Reinforcement Learning Workshop", "RL algorithms and practical applications", "Workshop", "2025-07-16 10:30", "2025-07-16 13:30", "RL Research Group", "alex.nguyen@rlresearch.com"},
	{"Azure Kubernetes Service", "Container orchestration with AKS", "Training", "2025-07-17 15:00", "2025-07-17 18:00", "Container Solutions", "maria.gonzalez@containersol.com"},
	{"Cybersecurity Fundamentals", "Essential cybersecurity concepts and practices", "Training", "2025-07-18 09:00", "2025-07-18 12:00", "CyberDefense Academy", "thomas.wilson@cyberdefense.com"},
	{"MLOps and Model Deployment", "Production ML systems and operations", "Training", "2025-07-21 14:00", "2025-07-21 17:00", "MLOps Experts", "priya.sharma@mlopsexperts.com"},
	{"Azure Data Factory Workshop", "Data integration and ETL processes", "Workshop", "2025-07-22 10:00", "2025-07-22 13:00", "DataFlow Systems", "kevin.anderson@dataflow.com"},
	{"Advanced Python Programming", "Advanced Python concepts for developers", "Training", "2025-07-23 13:30", "2025-07-23 16:30", "Python Professionals", "rachel.white@pythonpro.com"},
	{"Computer Vision with Azure", "Azure Cognitive Services for computer vision", "Consultation", "2025-07-24 09:30", "2025-07-24 12:30", "Vision Cloud Inc.", "james.martin@visioncloud.com"},
	{"Predictive Analytics Workshop", "Statistical modeling and predictive techniques", "Workshop", "2025-07-25 14:00", "2025-07-25 17:00", "Analytics Solutions", "stephanie.jones@analyticsol.com"},
	{"Azure IoT Solutions", "Internet of Things development with Azure", "Training", "2025-07-28 10:00", "2025-07-28 13:00", "IoT Innovations", "brian.thompson@iotinnovations.com"},
	{"DevOps Best Practices", "Modern DevOps methodologies and tools", "Review", "2025-07-29 14:30", "2025-07-29 17:30", "DevOps Academy", "nicole.clark@devopsacademy.com"},
	{"AI Ethics and Responsible AI", "Ethical considerations in AI development", "Meeting", "2025-07-30 09:00", "2025-07-30 11:30", "Ethical AI Institute", "michael.davis@ethicalai.org"},
	{"Azure Cost Optimization", "Managing and optimizing Azure costs", "Consultation", "2025-07-31 15:00", "2025-07-31 17:30", "CloudCost Consultants", "laura.miller@cloudcost.com"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required for seeding")
	}

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM bookings`); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}

	const insert = `
		INSERT INTO bookings (id, title, description, category, start_time, end_time,
			client_name, client_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

	for _, s := range july2025 {
		start, err := time.ParseInLocation("2006-01-02 15:04", s.Start, time.Local)
		if err != nil {
			return fmt.Errorf("bad start %q: %w", s.Start, err)
		}
		end, err := time.ParseInLocation("2006-01-02 15:04", s.End, time.Local)
		if err != nil {
			return fmt.Errorf("bad end %q: %w", s.End, err)
		}

		_, err = db.ExecContext(ctx, insert,
			uuid.NewString(), s.Title, s.Description, s.Category,
			start, end, s.ClientName, s.ClientEmail, booking.StatusConfirmed,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", s.Title, err)
		}
	}

	fmt.Printf("seeded %d sessions for July 2025\n", len(july2025))
	return nil
}
