package domain

import (
	"strings"
	"time"
)

// SignatureStatus is the lifecycle state of a digital signature. Contracts
// reuse it for their signing field.
type SignatureStatus string

const (
	SignaturePending  SignatureStatus = "PENDENTE"
	SignatureSigned   SignatureStatus = "ASSINADO"
	SignatureRejected SignatureStatus = "REJEITADO"
	SignatureExpired  SignatureStatus = "EXPIRADO"
)

// Signature is a digital signature attached to a contract. Payload holds
// the drawn signature as a base64 image data URL.
type Signature struct {
	ID         int32           `json:"id"`
	ContractID int32           `json:"contratoId"`
	Payload    string          `json:"assinatura,omitempty"`
	SignedAt   string          `json:"dataAssinatura,omitempty"`
	Status     SignatureStatus `json:"status"`
	Notes      string          `json:"observacoes,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
}

// SigningData is the in-flight payload while a signature is being captured.
type SigningData struct {
	Payload   string `json:"assinaturaBase64"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"observacoes,omitempty"`
}

// ValidSignaturePayload reports whether a payload is a usable signature
// image: an image data URL with a non-empty base64 body after the comma.
func ValidSignaturePayload(payload string) bool {
	if !strings.HasPrefix(payload, "data:image/") {
		return false
	}
	comma := strings.Index(payload, ",")
	return comma >= 0 && comma < len(payload)-1
}

// HasSignatureContent reports whether a signature record carries a valid
// drawn payload.
func HasSignatureContent(s *Signature) bool {
	return ValidSignaturePayload(s.Payload)
}

// SignatureStatusBadge maps a signature status to presentation tokens;
// unknown values render as pending.
func SignatureStatusBadge(status SignatureStatus) StatusBadge {
	switch status {
	case SignatureSigned:
		return StatusBadge{Color: "success", Label: "Assinado"}
	case SignatureRejected:
		return StatusBadge{Color: "danger", Label: "Rejeitado"}
	case SignatureExpired:
		return StatusBadge{Color: "danger", Label: "Expirado"}
	case SignaturePending:
		return StatusBadge{Color: "warning", Label: "Pendente"}
	default:
		return StatusBadge{Color: "warning", Label: "Pendente"}
	}
}

// NewSigningData stamps a captured payload with the current time.
func NewSigningData(payload, notes string, now time.Time) SigningData {
	return SigningData{
		Payload:   payload,
		Timestamp: now.UTC().Format(time.RFC3339),
		Notes:     notes,
	}
}

// ValidSigningData requires a valid payload and a timestamp.
func ValidSigningData(d *SigningData) bool {
	return ValidSignaturePayload(d.Payload) && d.Timestamp != ""
}
