package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// Maximum size for general document uploads (10MB)
	maxDocumentSize = 10 * 1024 * 1024
	// Maximum size for logo uploads (2MB)
	maxLogoSize = 2 * 1024 * 1024
	// Logos wider than this get resized down
	maxLogoWidth = 512
)

var (
	// Allowed extensions for document-style uploads (bills, employee files,
	// project files, company documents)
	allowedDocumentExts = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".xls":  true,
		".xlsx": true,
		".csv":  true,
		".txt":  true,
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	// Allowed extensions for image uploads (logos)
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	reg := regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	return reg.ReplaceAllString(filename, "")
}

// ValidateDocument checks extension and size for a document-style upload
// before any bytes are written
func ValidateDocument(filename string, size int) error {
	if size > maxDocumentSize {
		return fmt.Errorf("file too large. Maximum size is %d bytes", maxDocumentSize)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedDocumentExts[ext] {
		return fmt.Errorf("unsupported file format. Allowed: pdf, doc, docx, xls, xlsx, csv, txt, jpg, jpeg, png")
	}
	return nil
}

// ValidateLogo checks extension and size for a logo upload
func ValidateLogo(filename string, size int) error {
	if size > maxLogoSize {
		return fmt.Errorf("logo too large. Maximum size is %d bytes", maxLogoSize)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported logo format. Allowed: jpg, jpeg, png")
	}
	return nil
}

// SaveDocument writes a validated document upload under uploads/<subdir>/ and
// returns the URL it is served from
func SaveDocument(fileData []byte, originalName, subdir string) (string, error) {
	if err := ValidateDocument(originalName, len(fileData)); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(cleanFilename(originalName)))
	filename := uuid.New().String() + ext

	dir := filepath.Join(uploadBaseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return baseURL + "/" + subdir + "/" + filename, nil
}

// SaveLogo validates, resizes and stores a company logo, returning its URL.
// Oversized images are scaled down to maxLogoWidth preserving aspect ratio.
func SaveLogo(fileData []byte, originalName string) (string, error) {
	if err := ValidateLogo(originalName, len(fileData)); err != nil {
		return "", err
	}

	tmp := filepath.Join(os.TempDir(), uuid.New().String()+strings.ToLower(filepath.Ext(originalName)))
	if err := os.WriteFile(tmp, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to stage logo: %v", err)
	}
	defer os.Remove(tmp)

	img, err := imaging.Open(tmp)
	if err != nil {
		return "", fmt.Errorf("invalid image file: %v", err)
	}
	if img.Bounds().Dx() > maxLogoWidth {
		img = imaging.Resize(img, maxLogoWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(uploadBaseDir, "logos")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	filename := uuid.New().String() + ".png"
	fullPath := filepath.Join(dir, filename)
	if err := imaging.Save(img, fullPath); err != nil {
		return "", fmt.Errorf("failed to save logo: %v", err)
	}

	return baseURL + "/logos/" + filename, nil
}

// LocalPathForURL maps an /uploads URL back to its path on disk, "" when the
// URL is not a local upload
func LocalPathForURL(url string) string {
	if !strings.HasPrefix(url, baseURL+"/") {
		return ""
	}
	rel := strings.TrimPrefix(url, baseURL+"/")
	// Reject traversal attempts
	if strings.Contains(rel, "..") {
		return ""
	}
	return filepath.Join(uploadBaseDir, filepath.FromSlash(rel))
}

// DeleteUpload removes a stored upload by its URL; missing files are ignored
func DeleteUpload(url string) error {
	path := LocalPathForURL(url)
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
