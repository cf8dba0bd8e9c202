package utils

import (
	"carehome-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateExportObjectName(patientID, format string, now time.Time) string {
	return fmt.Sprintf("specifications/%s/%s-%s.%s", patientID, now.UTC().Format("20060102T150405"), uuid.NewString(), format)
}
