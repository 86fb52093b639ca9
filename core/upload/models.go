package upload

import (
	"io"
	"path"
	"strings"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrInvalidCategory = errors.New("Invalid category.")
	ErrNoFile          = errors.New("No file uploaded.")
	ErrInvalidFilename = errors.New("Invalid file name.")
)

// Category is one of the fixed folders students can download from.
type Category string

const (
	CategoryResults   Category = "results"
	CategoryTimetable Category = "timetable"
	CategoryNotes     Category = "notes"
)

var Categories = []Category{CategoryResults, CategoryTimetable, CategoryNotes}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Record is the metadata kept for a generic (uncategorized) upload.
type Record struct {
	Filename     string `json:"filename"` // random name on disk
	OriginalName string `json:"originalname"`
	UploadedBy   string `json:"uploadedBy"`
	UploadDate   string `json:"uploadDate"` // human readable
}

// NewUpload is a single file received from a form.
type NewUpload struct {
	OriginalName string
	Content      io.Reader
	UploadedBy   string
}

// CategoryListing lists the files found in a category folder.
type CategoryListing struct {
	Category Category
	Files    []string
}

// SanitizeFilename keeps the base name of a client supplied file name and replaces spaces with underscores.
func SanitizeFilename(name string) (string, error) {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	switch name {
	case "", ".", "..", "/":
		return "", ErrInvalidFilename
	}
	return name, nil
}

// isStoredName reports whether `name` can only refer to a file directly inside the upload area.
func isStoredName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
