package util

import (
	"path/filepath"
	"strconv"
	"time"
)

// GenerateUniqueFilename appends a nanosecond timestamp to a filename so
// repeated uploads of the same file never collide.
func GenerateUniqueFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	name := filepath.Base(originalFilename)
	name = name[:len(name)-len(ext)]

	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return name + "_" + timestamp + ext
}
