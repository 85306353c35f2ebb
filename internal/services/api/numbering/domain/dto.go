package domain

import (
	"context"

	"tallybook/internal/core/numberpattern"
	"tallybook/internal/platform/net/http/bind"
)

func init() {
	bind.RegisterRule("number_format", "{0} is not a valid number format", func(fl bind.FieldLevel) bool {
		_, err := numberpattern.Compile(fl.Field().String())
		return err == nil
	})
}

// NumberInput picks a format, inline or by catalog name, and the customer
// the customer tokens refer to
type NumberInput struct {
	Format         string `json:"format,omitempty" validate:"omitempty,max=256,number_format" example:"{Y}-{ccy,4}"`
	FormatName     string `json:"format_name,omitempty" validate:"omitempty,max=64" example:"invoice"`
	Customer       string `json:"customer,omitempty" validate:"omitempty,max=200" example:"Acme Ltd"`
	CustomerNumber string `json:"customer_number,omitempty" validate:"omitempty,max=64" example:"C042"`
	StartWith      int    `json:"start_with,omitempty" validate:"min=0,max=1000000" example:"0"`
}

// Preview is a computed but unrecorded number
type Preview struct {
	Number     string `json:"number" example:"2026-0007"`
	Format     string `json:"format" example:"{Y}-{ccy,4}"`
	FormatName string `json:"format_name,omitempty" example:"invoice"`
}

// FormatInfo describes a catalog entry
type FormatInfo struct {
	Name        string   `json:"name" example:"invoice"`
	Format      string   `json:"format" example:"{Y}-{ccy,4}"`
	Description string   `json:"description,omitempty"`
	Default     bool     `json:"default"`
	Directives  []string `json:"directives"`
}

// ServicePort is the numbering contract
type ServicePort interface {
	Preview(ctx context.Context, in NumberInput) (Preview, error)
	Issue(ctx context.Context, in NumberInput) (Issued, error)
	Formats(ctx context.Context) ([]FormatInfo, error)
}

// TokenLister reports the directive bases the numbering strategy resolves
type TokenLister interface {
	NumberTokens() []string
}
