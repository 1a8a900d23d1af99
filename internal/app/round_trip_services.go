package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-demo/internal/domain/toyrsa"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/config"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/logger"

	"github.com/google/uuid"
)

// roundTripService implements the RoundTripService interface
type roundTripService struct {
	settings     *config.KeyGenSettings
	rsaProcessor toyrsa.RSAProcessor
	logger       logger.Logger
}

// NewRoundTripService creates a new roundTripService instance
func NewRoundTripService(settings *config.KeyGenSettings, rsaProcessor toyrsa.RSAProcessor, logger logger.Logger) (toyrsa.RoundTripService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key generation settings: %w", err)
	}
	return &roundTripService{
		settings:     settings,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Run generates p, q, n, phi, e and d, then encrypts message with (e, n) and
// decrypts the result with (d, n). Any failure aborts the run.
func (s *roundTripService) Run(ctx context.Context, message int64) (*toyrsa.Transcript, error) {
	runID := uuid.New().String()
	s.logger.Info("Starting RSA round trip ", runID)

	p, err := s.prime(s.settings.FixedP)
	if err != nil {
		return nil, fmt.Errorf("failed to generate p: %w", err)
	}
	q, err := s.prime(s.settings.FixedQ)
	if err != nil {
		return nil, fmt.Errorf("failed to generate q: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := s.settings.FixedE
	if e == 0 {
		e, err = s.rsaProcessor.GenerateExponent((p - 1) * (q - 1))
		if err != nil {
			return nil, fmt.Errorf("failed to generate e: %w", err)
		}
	}

	keys, err := s.rsaProcessor.DeriveKeys(p, q, e)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ciphertext, encryptSteps, err := s.rsaProcessor.Encrypt(message, keys.PublicKey())
	if err != nil {
		return nil, err
	}
	decrypted, decryptSteps, err := s.rsaProcessor.Decrypt(ciphertext, keys.PrivateKey())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Finished RSA round trip ", runID)
	return &toyrsa.Transcript{
		RunID:        runID,
		Keys:         keys,
		Message:      message,
		Ciphertext:   ciphertext,
		Decrypted:    decrypted,
		EncryptSteps: encryptSteps,
		DecryptSteps: decryptSteps,
	}, nil
}

// prime returns fixed when set, otherwise a prime drawn from the configured range
func (s *roundTripService) prime(fixed int64) (int64, error) {
	if fixed != 0 {
		return fixed, nil
	}
	return s.rsaProcessor.GeneratePrime(s.settings.PrimeMin, s.settings.PrimeMax)
}
