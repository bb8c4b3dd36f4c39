package config

import (
	"log"
	"os"
	"strconv"
)

// Config carries runtime settings. It is built once at startup and passed
// to whoever needs it; there are no package-level singletons.
type Config struct {
	Port string

	// MaterialApprovalCeiling is the request total (quantity x rate) up to
	// which a supervisor may approve; above it a project manager or owner
	// must decide.
	MaterialApprovalCeiling float64

	// PermitOTPLength is the number of digits in permit one-time codes.
	PermitOTPLength int

	// PermitOTPTTLMinutes expires unverified codes after this many minutes.
	// Zero means codes never expire.
	PermitOTPTTLMinutes int

	// RevalidateGPSOnApproval re-checks the recorded coordinates against
	// the site fence when attendance is approved.
	RevalidateGPSOnApproval bool

	// Consumption variance grading thresholds, in percent over theoretical.
	VarianceWarningPct float64
	VarianceAlertPct   float64

	// DefaultSiteRadiusMeters is applied to newly created sites that carry
	// a location but no explicit radius.
	DefaultSiteRadiusMeters float64
}

// Load reads configuration from the environment. A .env file is honored
// when present.
func Load() Config {
	loadDotEnv()

	return Config{
		Port:                    envString("PORT", "8080"),
		MaterialApprovalCeiling: envFloat("MATERIAL_APPROVAL_CEILING", 50000),
		PermitOTPLength:         envInt("PERMIT_OTP_LENGTH", 4),
		PermitOTPTTLMinutes:     envInt("PERMIT_OTP_TTL_MINUTES", 0),
		RevalidateGPSOnApproval: envBool("REVALIDATE_GPS_ON_APPROVAL", false),
		VarianceWarningPct:      envFloat("VARIANCE_WARNING_PCT", 5),
		VarianceAlertPct:        envFloat("VARIANCE_ALERT_PCT", 15),
		DefaultSiteRadiusMeters: envFloat("DEFAULT_SITE_RADIUS_M", 100),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
