package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = ""   // e.g. "example.com,example2.com"
	MYSQL_DSN    = ""   // MySQL will be used if this is set
	SQLITE_FILE  = ""   // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS = "0.0.0.0:8080"
	SESSION_KEY  = "this is a long key" // override in production
	DEBUG_MODE   = true
	// Outbound mail (password reset form). If SMTP_HOST is empty,
	// messages are logged instead of sent.
	SMTP_HOST             = ""
	SMTP_PORT             = 587
	SMTP_USER             = ""
	SMTP_PASSWORD         = ""
	RESET_EMAIL_RECIPIENT = "admin@example.com"
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("SMTP_HOST", &SMTP_HOST)
	readEnvInt("SMTP_PORT", &SMTP_PORT)
	readEnvString("SMTP_USER", &SMTP_USER)
	readEnvString("SMTP_PASSWORD", &SMTP_PASSWORD)
	readEnvString("RESET_EMAIL_RECIPIENT", &RESET_EMAIL_RECIPIENT)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
