package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type SMTP struct {
	Host     string
	Port     int
	Secure   bool
	User     string
	Pass     string
	From     string
	NotifyTo string
}

type Vertex struct {
	ProjectID     string
	Location      string
	Model         string
	FallbackModel string
}

// App carries the settings read from the environment at startup.
type App struct {
	Port        string
	LogLevel    string
	UploadDir   string
	GCSBucket   string
	GCSPublic   bool
	GCSBaseURL  string
	CORSOrigins []string

	SMTP   SMTP
	Vertex Vertex

	AIResponseTimeout    time.Duration
	SessionSweepInterval time.Duration
}

func LoadApp() App {
	smtpUser := os.Getenv("SMTP_USER")
	return App{
		Port:        envOr("PORT", "5000"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		UploadDir:   envOr("UPLOAD_DIR", "uploads"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		GCSPublic:   os.Getenv("GCS_PUBLIC") != "false",
		GCSBaseURL:  os.Getenv("GCS_BASE_URL"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			Secure:   os.Getenv("SMTP_SECURE") == "true",
			User:     smtpUser,
			Pass:     os.Getenv("SMTP_PASS"),
			From:     envOr("SMTP_FROM", smtpUser),
			NotifyTo: os.Getenv("NOTIFY_EMAIL"),
		},
		Vertex: Vertex{
			ProjectID:     os.Getenv("GOOGLE_CLOUD_PROJECT"),
			Location:      envOr("GOOGLE_CLOUD_LOCATION", "us-central1"),
			Model:         envOr("GEMINI_MODEL", "gemini-1.5-flash"),
			FallbackModel: envOr("GEMINI_FALLBACK_MODEL", "gemini-1.5-pro"),
		},

		AIResponseTimeout:    envDuration("AI_RESPONSE_TIMEOUT", 8*time.Second),
		SessionSweepInterval: envDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && n > 0 {
		return n
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key))); err == nil && d > 0 {
		return d
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
