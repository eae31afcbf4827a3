package domain

import (
	"fmt"
	"strings"

	"locamaq-backend/internal/utils"
)

// Client is a renter on record. The tax id (CPF for persons, CNPJ for
// companies) doubles as the person/company discriminator: 11 or fewer
// digits means a person.
type Client struct {
	ID           int32  `json:"id"`
	Name         string `json:"contratante"`
	TaxID        string `json:"cpfCnpj"`
	SecondaryDoc string `json:"rgIe,omitempty"` // RG for persons, IE for companies
	Address      string `json:"endereco"`
	District     string `json:"bairro"`
	PostalCode   string `json:"cep,omitempty"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
	Phone        string `json:"telefone,omitempty"`
	Email        string `json:"email,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// IsPerson reports whether the client is a natural person (CPF holder)
// rather than a company (CNPJ holder).
func IsPerson(c *Client) bool {
	return len(utils.Digits(c.TaxID)) <= 11
}

// FormattedDocument returns the labeled primary document for display.
func FormattedDocument(c *Client) string {
	if IsPerson(c) {
		return fmt.Sprintf("CPF: %s", c.TaxID)
	}
	return fmt.Sprintf("CNPJ: %s", c.TaxID)
}

// FormattedSecondaryDocument returns the labeled secondary document
// (RG or IE depending on the client kind).
func FormattedSecondaryDocument(c *Client) string {
	label := "IE"
	if IsPerson(c) {
		label = "RG"
	}
	if c.SecondaryDoc == "" {
		return fmt.Sprintf("%s: Não informado", label)
	}
	return fmt.Sprintf("%s: %s", label, c.SecondaryDoc)
}

// FullAddress assembles the display address, skipping empty optional parts.
func FullAddress(c *Client) string {
	var b strings.Builder
	b.WriteString(c.Address)
	if c.District != "" {
		b.WriteString(", ")
		b.WriteString(c.District)
	}
	if c.PostalCode != "" {
		b.WriteString(", CEP: ")
		b.WriteString(c.PostalCode)
	}
	fmt.Fprintf(&b, ", %s/%s", c.City, c.State)
	return b.String()
}

// ValidClientTaxID reports whether the client's tax id passes the checksum
// for its kind.
func ValidClientTaxID(c *Client) bool {
	if IsPerson(c) {
		return utils.IsValidCPF(c.TaxID)
	}
	return utils.IsValidCNPJ(c.TaxID)
}
