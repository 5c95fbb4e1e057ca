package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const numberChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateInvoiceNumber builds a display identifier like INV-2026-7GK4QD for
// invoices created without an explicit number. The charset drops lookalike
// characters (0/O, 1/I).
func GenerateInvoiceNumber(now time.Time) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INV-%d-", now.Year())

	for range 6 {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(numberChars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(numberChars[num.Int64()])
	}

	return sb.String(), nil
}
