package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ignitai/ignitai-backend/internal/cache"
	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/repositories/mongo"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

const certificateCacheTTL = 10 * time.Minute

// CertificateVerification is {valid:true, ...certificate} for a hit and
// {valid:false, id} for a miss.
type CertificateVerification struct {
	Valid bool   `json:"valid"`
	ID    string `json:"id,omitempty"`
	*models.Certificate
}

type CertificateService interface {
	Verify(ctx context.Context, certificateID string) (*CertificateVerification, error)
	Upload(ctx context.Context, certs []models.Certificate) (int, error)
}

type certificateService struct {
	repo  mongo.CertificateRepository
	cache cache.Cache
}

func NewCertificateService(repo mongo.CertificateRepository, c cache.Cache) CertificateService {
	if c == nil {
		c = cache.Nop{}
	}
	return &certificateService{repo: repo, cache: c}
}

func (s *certificateService) Verify(ctx context.Context, certificateID string) (*CertificateVerification, error) {
	const op = "CertificateService.Verify"

	id := strings.TrimSpace(certificateID)
	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "certificateId is required", nil)
	}

	var cached models.Certificate
	if hit, err := s.cache.GetJSON(ctx, cache.CertificateKey(id), &cached); err == nil && hit {
		return &CertificateVerification{Valid: true, Certificate: &cached}, nil
	}

	cert, err := s.repo.GetByCertificateID(ctx, id)
	if errors.Is(err, utils.ErrNotFound) {
		return &CertificateVerification{Valid: false, ID: id}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to verify certificate.", err)
	}

	_ = s.cache.SetJSON(ctx, cache.CertificateKey(id), cert, certificateCacheTTL)
	return &CertificateVerification{Valid: true, Certificate: cert}, nil
}

func (s *certificateService) Upload(ctx context.Context, certs []models.Certificate) (int, error) {
	const op = "CertificateService.Upload"

	keys := make([]string, 0, len(certs))
	for i := range certs {
		certs[i].CertificateID = strings.TrimSpace(certs[i].CertificateID)
		if certs[i].CertificateID == "" {
			return 0, utils.E(utils.CodeInvalidArgument, op, "Each certificate requires a certificateId.", nil)
		}
		keys = append(keys, cache.CertificateKey(certs[i].CertificateID))
	}
	if len(certs) == 0 {
		return 0, nil
	}

	n, err := s.repo.InsertMany(ctx, certs)
	if err != nil {
		return n, utils.E(utils.CodeInternal, op, "Failed to upload certificates.", err)
	}
	_ = s.cache.Del(ctx, keys...)
	return n, nil
}
