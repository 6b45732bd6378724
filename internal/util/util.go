package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Checksum returns the hex SHA-256 digest of everything read from r and the byte count.
func Checksum(r io.Reader) (string, int64, error) {
	sha256Hash := sha256.New()

	n, err := io.Copy(sha256Hash, r)
	if err != nil {
		return "", n, errors.Wrap(err, "failed to calculate checksum")
	}

	return hex.EncodeToString(sha256Hash.Sum(nil)), n, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatETA renders a route duration at minute precision, e.g. "45 min" or "1h 15min".
func FormatETA(duration time.Duration) string {
	minutes := int(duration.Round(time.Minute).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dmin", h, m)
}
