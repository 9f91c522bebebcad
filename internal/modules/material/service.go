package material

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

// Notifier fans out the material_new event to the group's members.
type Notifier interface {
	MaterialAdded(ctx context.Context, groupID *int64, title string)
}

type Service struct {
	repo      *Repository
	notifier  Notifier
	uploadDir string
}

func NewService(repo *Repository, notifier Notifier, uploadDir string) *Service {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &Service{repo: repo, notifier: notifier, uploadDir: uploadDir}
}

// AddLink stores an external link material. FilePath is always cleared;
// a material is a link or a file, not both.
func (s *Service) AddLink(ctx context.Context, m *StudyMaterial) (*StudyMaterial, error) {
	m.Title = sanitize.Clean(m.Title)
	if m.GroupID == nil {
		return nil, ErrGroupRequired
	}
	if m.URL == nil || strings.TrimSpace(*m.URL) == "" {
		return nil, ErrURLRequired
	}

	m.ID = 0
	m.FilePath = nil
	m.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifier.MaterialAdded(ctx, m.GroupID, m.Title)
	return m, nil
}

// SaveFile writes the upload to disk under a random name (original
// extension kept) and records it. A blank title falls back to the
// original filename.
func (s *Service) SaveFile(ctx context.Context, groupID, uploadedBy *int64, title, originalName string, src io.Reader) (*StudyMaterial, error) {
	if src == nil {
		return nil, ErrFileRequired
	}

	title = sanitize.Clean(title)
	if title == "" {
		title = sanitize.Clean(originalName)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close file: %w", err)
	}

	m := &StudyMaterial{
		GroupID:    groupID,
		UploadedBy: uploadedBy,
		Title:      title,
		FilePath:   &path,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		// Keep disk and DB consistent when the insert fails.
		_ = os.Remove(path)
		return nil, err
	}

	s.notifier.MaterialAdded(ctx, m.GroupID, m.Title)
	return m, nil
}

func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]StudyMaterial, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// FileForDownload resolves the material's on-disk path and the filename
// to present to the client.
func (s *Service) FileForDownload(ctx context.Context, id int64) (path, filename string, err error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if m.FilePath == nil || strings.TrimSpace(*m.FilePath) == "" {
		return "", "", ErrNotAFile
	}
	if _, err := os.Stat(*m.FilePath); err != nil {
		return "", "", ErrFileMissing
	}
	return *m.FilePath, filepath.Base(*m.FilePath), nil
}

// Delete removes the record and, for file materials, the file itself.
// The file is already orphaned once the row is gone, so a failed
// removal is only logged.
func (s *Service) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if m.FilePath != nil && strings.TrimSpace(*m.FilePath) != "" {
		if err := os.Remove(*m.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("material: could not delete file %s: %v", *m.FilePath, err)
		}
	}
	return nil
}
