package document

import (
	"path/filepath"
	"strings"
)

var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

var textExts = map[string]bool{
	".txt": true,
	".log": true,
	".rst": true,
	".go":  true,
}

// IsSupportedExt returns true if files with the extension can be opened.
func IsSupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	return markdownExts[ext] || textExts[ext]
}

// IsMarkdown returns true if the path names a markdown file, whose
// headings become scroll targets.
func IsMarkdown(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtsList returns a human-readable list of supported formats.
func SupportedExtsList() string {
	return ".md, .markdown, .txt, .log, .rst, .go"
}
