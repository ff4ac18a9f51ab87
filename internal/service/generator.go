package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
)

// SymbolPalette lists the symbol characters a caller may enable.
const SymbolPalette = "~!@#$%^&*()_+-={}[]|:;\"<>,.?\\/"

var (
	ErrSymbolNotAllowed  = errors.New("symbol is not in the allowed palette")
	ErrHashBatchTooLarge = errors.New("too many passwords requested for hashing")
)

// Recorder stores generation audit records.
type Recorder interface {
	Record(ctx context.Context, rec *model.GenerationRecord) error
}

// GeneratorService is the calling boundary around crypto.Generate: it applies
// defaults and the 1000 ceiling, checks symbols, hashes and audits batches.
type GeneratorService struct {
	recorder     Recorder
	hasher       *crypto.Hasher
	hashMaxCount int
	newSource    func() crypto.Source
}

// NewGeneratorService creates a new GeneratorService. A nil recorder disables auditing.
func NewGeneratorService(recorder Recorder, hasher *crypto.Hasher, hashMaxCount int) *GeneratorService {
	return &GeneratorService{
		recorder:     recorder,
		hasher:       hasher,
		hashMaxCount: hashMaxCount,
		newSource:    func() crypto.Source { return crypto.CryptoSource{} },
	}
}

// Generate produces a batch for the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultRequest()
	genReq := crypto.GenerationRequest{
		Length:  intOrDefault(req.Length, defaults.Length),
		Count:   intOrDefault(req.Count, defaults.Count),
		Symbols: req.Symbols,
	}

	if err := crypto.CheckCeiling(genReq.Length, genReq.Count); err != nil {
		return model.GenerateResponse{}, err
	}
	if err := checkSymbols(genReq.Symbols); err != nil {
		return model.GenerateResponse{}, err
	}
	if req.Hash && genReq.Count > s.hashMaxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: at most %d", ErrHashBatchTooLarge, s.hashMaxCount)
	}

	passwords, err := crypto.Generate(genReq, s.newSource())
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		ID:        uuid.NewString(),
		Passwords: passwords,
		Length:    genReq.Length,
		Count:     len(passwords),
	}

	if req.Hash {
		hashes, err := s.hasher.HashAll(passwords)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing passwords: %w", err)
		}
		resp.Hashes = hashes
	}

	s.audit(ctx, resp, genReq, req)

	return resp, nil
}

// IsValidationError reports whether err stems from caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrInvalidCount) ||
		errors.Is(err, crypto.ErrOutOfRange) ||
		errors.Is(err, crypto.ErrEmptyAlphabet) ||
		errors.Is(err, crypto.ErrInvalidSymbols) ||
		errors.Is(err, ErrSymbolNotAllowed) ||
		errors.Is(err, ErrHashBatchTooLarge)
}

func (s *GeneratorService) audit(ctx context.Context, resp model.GenerateResponse, genReq crypto.GenerationRequest, req model.GenerateRequest) {
	if s.recorder == nil {
		return
	}

	rec := &model.GenerationRecord{
		ID:          resp.ID,
		Length:      genReq.Length,
		Count:       resp.Count,
		SymbolCount: utf8.RuneCountInString(genReq.Symbols),
		Hashed:      req.Hash,
		ClientIP:    req.ClientIP,
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		slog.Warn("recording generation failed", "id", rec.ID, "error", err)
	}
}

// checkSymbols rejects characters outside SymbolPalette. Repeats are allowed.
func checkSymbols(symbols string) error {
	for _, ch := range symbols {
		if !strings.ContainsRune(SymbolPalette, ch) {
			return fmt.Errorf("%w: %q", ErrSymbolNotAllowed, ch)
		}
	}
	return nil
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
