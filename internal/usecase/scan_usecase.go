package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaxImageBytes caps uploaded scan images.
const MaxImageBytes = 5 << 20

var (
	ErrInvalidImage    = errors.New("invalid image")
	ErrAnalysisFailed  = errors.New("analysis failed")
	ErrStaleScanResult = errors.New("scan result superseded")
	ErrTradeInProgress = errors.New("trade confirmation in progress")
	ErrNoActiveScan    = errors.New("no active scan")
)

var supportedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

type IScanUseCase interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (entities.ScanResult, error)
	Active(ctx context.Context) (entities.ScanResult, error)
	Discard(ctx context.Context) error
}

type ScanUseCase struct {
	session  *Session
	analyzer interfaces.IVisionAnalyzer
}

var _ IScanUseCase = (*ScanUseCase)(nil)

func NewScanUseCase(session *Session, analyzer interfaces.IVisionAnalyzer) *ScanUseCase {
	return &ScanUseCase{session: session, analyzer: analyzer}
}

func NormalizeMimeType(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}
	return mt
}

// Analyze starts a new scan, replacing any active one. If another scan starts
// or the session ends while the analyzer is working, the result is dropped
// with ErrStaleScanResult.
func (u *ScanUseCase) Analyze(ctx context.Context, image []byte, mimeType string) (entities.ScanResult, error) {
	mimeType = NormalizeMimeType(mimeType)
	if _, ok := supportedImageTypes[mimeType]; !ok || len(image) == 0 || len(image) > MaxImageBytes {
		return entities.ScanResult{}, ErrInvalidImage
	}

	s := u.session
	s.mu.Lock()
	p, err := s.requireProfileLocked()
	if err != nil {
		s.mu.Unlock()
		return entities.ScanResult{}, err
	}
	if s.negotiation.State == entities.NegotiationConfirming {
		s.mu.Unlock()
		return entities.ScanResult{}, ErrTradeInProgress
	}
	s.resetScanLocked()
	token := s.scanSeq
	s.mu.Unlock()

	zap.L().Info("[scan][usecase] analysis start",
		zap.Uint64("scan_seq", token),
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(image)),
	)

	result, err := u.analyzer.Analyze(ctx, image, mimeType)
	if err == nil {
		err = result.Validate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanSeq != token || s.profile == nil || s.profile.ID != p.ID {
		zap.L().Info("[scan][usecase] analysis result discarded", zap.Uint64("scan_seq", token))
		return entities.ScanResult{}, ErrStaleScanResult
	}
	if err != nil {
		s.resetScanLocked()
		zap.L().Warn("[scan][usecase] analysis failed", zap.Uint64("scan_seq", token), zap.Error(err))
		return entities.ScanResult{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	active := copyScan(result)
	s.scanSeq++
	s.scan = &active
	s.negotiation = idleNegotiation()

	zap.L().Info("[scan][usecase] analysis success",
		zap.Uint64("scan_seq", s.scanSeq),
		zap.Int("components", len(active.Components)),
		zap.String("primary_material", active.PrimaryMaterial()),
	)
	return copyScan(active), nil
}

func (u *ScanUseCase) Active(_ context.Context) (entities.ScanResult, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return entities.ScanResult{}, err
	}
	if s.scan == nil {
		return entities.ScanResult{}, ErrNoActiveScan
	}
	return copyScan(*s.scan), nil
}

// Discard drops the active scan, as when the user leaves the marketplace.
func (u *ScanUseCase) Discard(_ context.Context) error {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return err
	}
	if s.negotiation.State == entities.NegotiationConfirming {
		return ErrTradeInProgress
	}
	s.resetScanLocked()
	return nil
}
