package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"estatelink/internal/domain"

	"github.com/google/uuid"
)

const (
	MaxFileSize    = 50 * 1024 * 1024 // 50 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// Photos feed listings; documents are lease paperwork. Each kind accepts
// its own mime set.
var allowedMimes = map[string]map[string]bool{
	KindPhoto: {
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	},
	KindDocument: {
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	},
}

// PropertyDirectory resolves the property a document is attached to, for
// the approval ownership check.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Notifier is the slice of the notification service this module uses.
type Notifier interface {
	NotifyDocumentApproved(ctx context.Context, userID int64, documentName string)
}

// Service stores files on local disk: save file, record in DB, return ID
// and public URL.
type Service struct {
	repo       Repository
	props      PropertyDirectory
	notifs     Notifier
	baseDir    string
	staticBase string
}

func NewService(repo Repository, props PropertyDirectory, notifs Notifier, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, props: props, notifs: notifs, baseDir: baseDir, staticBase: staticBase}
}

// Save writes the file to disk and records it. propertyID may be nil for
// files not yet attached to a property.
func (s *Service) Save(ctx context.Context, userID int64, propertyID *int64, kind string, fileHeader *multipart.FileHeader) (*Upload, error) {
	if kind != KindPhoto && kind != KindDocument {
		return nil, ErrInvalidKind
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the mime type from the first 512 bytes, never trust the header
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if !allowedMimes[kind][mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s_%s%s", id, sanitizeName(fileHeader.Filename), ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	record := &Upload{
		ID:           id,
		UserID:       userID,
		PropertyID:   propertyID,
		Kind:         kind,
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileURL:      s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"),
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return record, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Upload, error) {
	return s.repo.GetByID(ctx, id)
}

// ApproveDocument signs off a lease document. Admins approve anything;
// managers only documents attached to their own properties.
func (s *Service) ApproveDocument(ctx context.Context, actorID int64, role string, id string) (*Upload, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Kind != KindDocument {
		return nil, ErrNotDocument
	}

	if role != string(domain.RoleAdmin) {
		if record.PropertyID == nil {
			return nil, ErrNotManager
		}
		p, err := s.props.GetByID(ctx, *record.PropertyID)
		if err != nil {
			return nil, err
		}
		if p.ManagerID != actorID {
			return nil, ErrNotManager
		}
	}

	if record.Approved {
		return record, nil
	}

	now := time.Now()
	record.Approved = true
	record.ApprovedAt = &now
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyDocumentApproved(ctx, record.UserID, record.OriginalName)
	}
	return record, nil
}

// Delete removes the physical file and the record. Owner only.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.UserID != userID {
		return ErrNotOwner
	}

	absPath := filepath.Join(s.baseDir, record.FilePath)
	_ = os.Remove(absPath) // file may already be gone

	return s.repo.Delete(ctx, id)
}

// ListByUser returns the caller's uploads.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Upload, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// ListByProperty returns files attached to a property, optionally filtered
// by kind.
func (s *Service) ListByProperty(ctx context.Context, propertyID int64, kind string) ([]*Upload, error) {
	return s.repo.ListByPropertyID(ctx, propertyID, kind)
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
