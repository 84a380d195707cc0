package utils

import (
	"clinic-service/internal/pkg/constvars"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateObjectName keeps the original extension so browsers can infer the type.
func GenerateObjectName(prefix, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return prefix + "/" + uuid.NewString() + extension
}
