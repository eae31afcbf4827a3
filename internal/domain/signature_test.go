package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidSignaturePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"Valid png data url", "data:image/png;base64,iVBORw0KGgo=", true},
		{"Valid jpeg data url", "data:image/jpeg;base64,/9j/4AAQ", true},
		{"Empty body after comma", "data:image/png;base64,", false},
		{"No comma", "data:image/png;base64", false},
		{"Not a data url", "iVBORw0KGgo=", false},
		{"Wrong media type", "data:text/plain;base64,aGVsbG8=", false},
		{"Empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSignaturePayload(tt.payload))
		})
	}
}

func TestHasSignatureContent(t *testing.T) {
	assert.True(t, HasSignatureContent(&Signature{Payload: "data:image/png;base64,abc"}))
	assert.False(t, HasSignatureContent(&Signature{}))
}

func TestSignatureStatusBadge(t *testing.T) {
	assert.Equal(t, StatusBadge{Color: "success", Label: "Assinado"}, SignatureStatusBadge(SignatureSigned))
	assert.Equal(t, StatusBadge{Color: "danger", Label: "Rejeitado"}, SignatureStatusBadge(SignatureRejected))
	assert.Equal(t, StatusBadge{Color: "danger", Label: "Expirado"}, SignatureStatusBadge(SignatureExpired))
	assert.Equal(t, StatusBadge{Color: "warning", Label: "Pendente"}, SignatureStatusBadge(SignaturePending))
	assert.Equal(t, StatusBadge{Color: "warning", Label: "Pendente"}, SignatureStatusBadge(SignatureStatus("???")))
}

func TestNewSigningData(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	d := NewSigningData("data:image/png;base64,abc", "ok", now)
	assert.Equal(t, "2025-03-10T12:00:00Z", d.Timestamp)
	assert.True(t, ValidSigningData(&d))

	bad := NewSigningData("", "", now)
	assert.False(t, ValidSigningData(&bad))
}
