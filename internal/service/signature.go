package service

import (
	"context"
	"errors"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/logger"
	"locamaq-backend/internal/repository"
	"locamaq-backend/internal/utils"
)

var (
	ErrInvalidSignature  = errors.New("signature payload is not a usable image")
	ErrAlreadySigned     = errors.New("contract is already signed")
	ErrSignatureRejected = errors.New("contract signature was rejected")
)

type signatureService struct {
	signatureRepo repository.SignatureRepository
	contractRepo  repository.ContractRepository
	clientRepo    repository.ClientRepository
	email         EmailService
	jpegQuality   int
	expiryDays    int
}

func NewSignatureService(signatureRepo repository.SignatureRepository, contractRepo repository.ContractRepository, clientRepo repository.ClientRepository, email EmailService, jpegQuality, expiryDays int) SignatureService {
	return &signatureService{
		signatureRepo: signatureRepo,
		contractRepo:  contractRepo,
		clientRepo:    clientRepo,
		email:         email,
		jpegQuality:   jpegQuality,
		expiryDays:    expiryDays,
	}
}

// RequestSignature opens the signing window for a contract by creating a
// pending signature record and marking the contract accordingly. The client
// is notified by email when one is on record; a mail failure does not undo
// the request.
func (s *signatureService) RequestSignature(ctx context.Context, contractID int32) (*domain.Signature, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if domain.IsSigned(contract) {
		return nil, ErrAlreadySigned
	}

	sig := &domain.Signature{
		ContractID: contractID,
		Status:     domain.SignaturePending,
	}
	if err := s.signatureRepo.Create(ctx, sig); err != nil {
		return nil, err
	}
	if err := s.contractRepo.UpdateSignatureStatus(ctx, contractID, domain.SignaturePending, ""); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, contract.ClientID)
	if err != nil || client.Email == "" {
		logger.Debug("No email on record for client", "client_id", contract.ClientID)
		return sig, nil
	}
	if err := s.email.SendSignatureRequest(ctx, client.Email, client.Name, contract.Number); err != nil {
		logger.Warn("Failed to send signature request email", "contract_id", contractID, "error", err)
	}
	return sig, nil
}

// SignContract attaches a drawn signature to a contract. The payload is
// recompressed before storage; compression failures keep the original image
// rather than losing the signature.
func (s *signatureService) SignContract(ctx context.Context, contractID int32, data domain.SigningData) (*domain.Signature, error) {
	if !domain.ValidSigningData(&data) {
		return nil, ErrInvalidSignature
	}

	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if domain.IsSigned(contract) {
		return nil, ErrAlreadySigned
	}

	payload := utils.CompressSignature(ctx, data.Payload, s.jpegQuality)
	signedAt := data.Timestamp
	if signedAt == "" {
		signedAt = time.Now().UTC().Format(time.RFC3339)
	}

	sig, err := s.signatureRepo.GetByContract(ctx, contractID)
	if err != nil {
		sig = &domain.Signature{ContractID: contractID}
	}
	sig.Payload = payload
	sig.SignedAt = signedAt
	sig.Status = domain.SignatureSigned
	sig.Notes = data.Notes

	if sig.ID == 0 {
		err = s.signatureRepo.Create(ctx, sig)
	} else {
		err = s.signatureRepo.Update(ctx, sig)
	}
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.UpdateSignatureStatus(ctx, contractID, domain.SignatureSigned, signedAt); err != nil {
		return nil, err
	}
	return sig, nil
}

// RejectSignature records a refusal to sign.
func (s *signatureService) RejectSignature(ctx context.Context, contractID int32, reason string) (*domain.Signature, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if domain.IsSigned(contract) {
		return nil, ErrAlreadySigned
	}

	sig, err := s.signatureRepo.GetByContract(ctx, contractID)
	if err != nil {
		sig = &domain.Signature{ContractID: contractID}
	}
	sig.Status = domain.SignatureRejected
	sig.Notes = reason

	if sig.ID == 0 {
		err = s.signatureRepo.Create(ctx, sig)
	} else {
		err = s.signatureRepo.Update(ctx, sig)
	}
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.UpdateSignatureStatus(ctx, contractID, domain.SignatureRejected, ""); err != nil {
		return nil, err
	}
	return sig, nil
}

func (s *signatureService) GetContractSignature(ctx context.Context, contractID int32) (*domain.Signature, error) {
	return s.signatureRepo.GetByContract(ctx, contractID)
}

// ExpireStaleSignatures times out pending signatures older than the
// configured window.
func (s *signatureService) ExpireStaleSignatures(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.expiryDays).Format(time.RFC3339)
	return s.signatureRepo.ExpirePendingBefore(ctx, cutoff)
}
