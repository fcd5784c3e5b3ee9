package model

import (
	"fmt"
	"io/fs"
)

// ErrDatasetNotFound is returned when the dataset path does not resolve
var ErrDatasetNotFound = fmt.Errorf("dataset not found: %w", fs.ErrNotExist)
